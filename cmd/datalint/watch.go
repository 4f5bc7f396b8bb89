package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/datalint/datalint/internal/config"
	"github.com/datalint/datalint/internal/rules"
)

// watchDebounce is how long a file must stay quiet before it is
// validated. Editors and spreadsheet apps write in bursts.
const watchDebounce = 500 * time.Millisecond

var (
	watchRules  string
	watchOutput string
)

var watchCmd = &cobra.Command{
	Use:   "watch [file or directory]",
	Short: "Revalidate data files when they change",
	Long: `Watch a file or directory and validate on every change.

With a file target, the file is validated once immediately and again on
every write until interrupted. With a directory target (the default is
the current directory), every created or modified .csv or .xlsx file is
validated. Generated reports are ignored so they do not trigger another
run.

Stop with Ctrl+C.

Examples:
  datalint watch orders.csv --rules rules.yaml
  datalint watch orders.csv -r rules.yaml -o /tmp/report.xlsx
  datalint watch ./incoming -r rules.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchRules, "rules", "r", "", "Rules file (JSON or YAML) or inline JSON")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Report path (single file targets only)")
	watchCmd.MarkFlagRequired("rules")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	// Fail on a bad rules argument before settling in to wait.
	if _, err := rules.Resolve(watchRules); err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("watch target: %w", err)
	}

	// A file target narrows the watch to that one path; a directory
	// target picks up every data file in it.
	watchDir := target
	var watchFile string
	if !info.IsDir() {
		watchFile, err = filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("resolve watch target: %w", err)
		}
		watchDir = filepath.Dir(watchFile)
	}
	if watchOutput != "" && watchFile == "" {
		return fmt.Errorf("--output requires a file target, not a directory")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(watchDir); err != nil {
		return fmt.Errorf("watch %s: %w", watchDir, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var (
		mu     sync.Mutex
		timers = make(map[string]*time.Timer)
	)
	pending := make(chan string, 16)

	// Restart the timer on every event so a burst of writes to the
	// same file yields a single validation.
	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := timers[path]; ok {
			t.Stop()
		}
		timers[path] = time.AfterFunc(watchDebounce, func() {
			mu.Lock()
			delete(timers, path)
			mu.Unlock()
			pending <- path
		})
	}

	if watchFile != "" {
		watchValidate(cfg, target, watchOutput)
		fmt.Printf("\nWatching %s for changes. Press Ctrl+C to stop.\n", target)
	} else {
		fmt.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", watchDir)
	}

	for {
		select {
		case <-sigCh:
			fmt.Println("\nStopping watch.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == 0 && event.Op&fsnotify.Write == 0 {
				continue
			}
			if watchFile != "" {
				abs, err := filepath.Abs(event.Name)
				if err != nil || abs != watchFile {
					continue
				}
			} else if !watchable(event.Name, cfg.Output.Suffix) {
				continue
			}
			schedule(event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "warning: watch error: %v\n", err)
		case path := <-pending:
			watchValidate(cfg, path, watchOutput)
		}
	}
}

// watchValidate runs one validation pass for a changed file. Failures
// are reported but keep the watch alive.
func watchValidate(cfg *config.Config, path, output string) {
	fmt.Printf("\n[%s] validating %s\n", time.Now().Format("15:04:05"), path)

	run, err := runValidation(cfg, validationRequest{
		Source: path,
		Rules:  watchRules,
		Output: output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: validate %s: %v\n", path, err)
		return
	}

	printResultSummary(run.Result)
	if run.OutputPath != "" {
		fmt.Printf("Report written to %s\n", run.OutputPath)
	}
}

// watchable reports whether a changed path should trigger validation.
// Generated reports, hidden files, and Excel lock files do not.
func watchable(path, suffix string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~$") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(base))
	if ext != ".csv" && ext != ".xlsx" {
		return false
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if suffix != "" && strings.HasSuffix(stem, suffix) {
		return false
	}
	return true
}
