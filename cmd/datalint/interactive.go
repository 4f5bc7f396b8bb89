package main

import (
	"fmt"
	"io"
	"log"

	"github.com/datalint/datalint/internal/config"
	"github.com/datalint/datalint/internal/tui"
)

// runInteractive starts the command shell. This is the default when
// datalint is invoked with no subcommand.
func runInteractive() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Suppress log output while the TUI owns the terminal
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	program, shell := tui.NewShellProgram()

	shell.SetCommandHandler(func(c *tui.Command) []string {
		return dispatchShellCommand(cfg, c)
	})

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	return nil
}

// dispatchShellCommand executes one parsed shell command and returns
// the lines to append to the scrollback. A nil return means the
// command is unknown.
func dispatchShellCommand(cfg *config.Config, c *tui.Command) []string {
	switch c.Name {
	case "validate":
		return shellValidate(cfg, c)
	case "status":
		return shellStatus(cfg)
	case "clear":
		return shellClear(cfg)
	default:
		return nil
	}
}

func shellValidate(cfg *config.Config, c *tui.Command) []string {
	source := c.Arg("file", "")
	if source == "" && len(c.Positional) > 0 {
		source = c.Positional[0]
	}
	rulesArg := c.Arg("rules", "")
	if source == "" || rulesArg == "" {
		return []string{"Usage: /validate --file <path> --rules <path or inline JSON> [--output <path>]"}
	}

	run, err := runValidation(cfg, validationRequest{
		Source: source,
		Rules:  rulesArg,
		Output: c.Arg("output", ""),
	})
	if err != nil {
		return []string{fmt.Sprintf("Error: %v", err)}
	}

	return resultLines(run.Result, run.OutputPath)
}

func shellClear(cfg *config.Config) []string {
	store, err := openStore(cfg)
	if err != nil {
		return []string{fmt.Sprintf("Error: open history database: %v", err)}
	}
	defer store.Close()

	deleted, err := store.Clear()
	if err != nil {
		return []string{fmt.Sprintf("Error: clear run history: %v", err)}
	}

	if deleted == 0 {
		return []string{"No run history found."}
	}
	return []string{fmt.Sprintf("Deleted %d run(s).", deleted)}
}

func shellStatus(cfg *config.Config) []string {
	store, err := openStore(cfg)
	if err != nil {
		return []string{fmt.Sprintf("Error: open history database: %v", err)}
	}
	defer store.Close()

	runs, err := store.ListRuns(10)
	if err != nil {
		return []string{fmt.Sprintf("Error: list runs: %v", err)}
	}

	if len(runs) == 0 {
		return []string{"No validation runs recorded. Try /validate <file> --rules <rules file>."}
	}

	lines := []string{"Recent runs:"}
	return append(lines, runHistoryLines(runs)...)
}
