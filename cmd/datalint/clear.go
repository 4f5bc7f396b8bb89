package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datalint/datalint/internal/config"
	"github.com/datalint/datalint/internal/session"
)

var (
	clearForce  bool
	clearDryRun bool
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete recorded run history",
	Long: `Delete all validation runs from the history database.

Examples:
  datalint clear            # Interactive clear with confirmation
  datalint clear --force    # Skip confirmation prompt
  datalint clear --dry-run  # Show how many runs would be deleted`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip confirmation prompt")
	clearCmd.Flags().BoolVar(&clearDryRun, "dry-run", false, "Show what would be deleted without deleting")
}

func runClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	path := cfg.Session.Path
	if path == "" {
		path = session.DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No run history found.")
		return nil
	}

	store, err := session.Open(path)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrate history database: %w", err)
	}

	count, err := store.CountRuns()
	if err != nil {
		return fmt.Errorf("count runs: %w", err)
	}

	if count == 0 {
		fmt.Println("No run history found.")
		return nil
	}

	if clearDryRun {
		fmt.Printf("Dry run: would delete %d run(s).\n", count)
		return nil
	}

	if !clearForce {
		fmt.Printf("Delete %d recorded run(s)? [y/N] ", count)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	deleted, err := store.Clear()
	if err != nil {
		return fmt.Errorf("clear run history: %w", err)
	}

	fmt.Printf("Deleted %d run(s).\n", deleted)
	return nil
}
