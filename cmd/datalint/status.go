package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/datalint/datalint/internal/config"
	"github.com/datalint/datalint/internal/session"
)

var statusLimit int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recent validation runs",
	Long: `Display recent validation runs from the history database.

Shows, for each run:
  - Which file was checked and how long ago
  - Error, warning, and passed counts
  - Where the Excel report was written`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&statusLimit, "limit", 10, "Maximum number of runs to show")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	path := cfg.Session.Path
	if path == "" {
		path = session.DefaultPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No validation runs recorded. Run 'datalint validate <file>' to start.")
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

	// Drop runs past the retention window before listing.
	if retention := cfg.RetentionDuration(); retention > 0 {
		if _, err := store.PurgeOlderThan(retention); err != nil {
			return fmt.Errorf("purge old runs: %w", err)
		}
	}

	runs, err := store.ListRuns(statusLimit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No validation runs recorded. Run 'datalint validate <file>' to start.")
		return nil
	}

	total, err := store.CountRuns()
	if err != nil {
		return fmt.Errorf("count runs: %w", err)
	}

	fmt.Printf("Recent Runs (%d of %d):\n", len(runs), total)
	for _, line := range runHistoryLines(runs) {
		fmt.Println(line)
	}

	return nil
}

// runHistoryLines formats runs for display, newest first. Run IDs are
// shown as an 8 character prefix, enough to tell runs apart.
func runHistoryLines(runs []session.Run) []string {
	var lines []string
	for _, r := range runs {
		elapsed := formatDuration(time.Since(r.CreatedAt))
		lines = append(lines, fmt.Sprintf("  %.8s  %s: %d error(s), %d warning(s), %d passed (%s ago)",
			r.ID, r.SourceFile, r.TotalErrors, r.TotalWarnings, r.TotalPassed, elapsed))
		if r.OutputFile != "" {
			lines = append(lines, fmt.Sprintf("            report: %s", r.OutputFile))
		}
	}
	return lines
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m > 0 {
			return fmt.Sprintf("%dh%dm", h, m)
		}
		return fmt.Sprintf("%dh", h)
	}
	days := int(d.Hours()) / 24
	return fmt.Sprintf("%dd", days)
}
