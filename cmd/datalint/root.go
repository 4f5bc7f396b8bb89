package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "datalint",
	Short: "Validate tabular data files",
	Long: `datalint checks CSV and Excel files against a set of validation rules
and produces a color-annotated Excel report of the findings.

With no arguments, launches an interactive shell where you can run
validations and inspect past runs.

Core capabilities:
- Required column checks
- Missing value detection (nulls, NaN, empty strings)
- Type conformance checks (int, float, str, bool)
- Color-coded Excel reports with summary and lineage sheets
- Run history for auditing past validations`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
