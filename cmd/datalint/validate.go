package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/datalint/datalint/internal/config"
	"github.com/datalint/datalint/internal/engine"
	"github.com/datalint/datalint/internal/report"
	"github.com/datalint/datalint/internal/rules"
	"github.com/datalint/datalint/internal/session"
	"github.com/datalint/datalint/internal/table"
	"github.com/datalint/datalint/pkg/findings"
)

var (
	validateRules    string
	validateOutput   string
	validateNoReport bool
	validateStrict   bool
	validateVerbose  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a CSV or Excel file",
	Long: `Validate a data file against a set of rules.

Rules are given as a JSON or YAML file, or as inline JSON:

  required_columns: columns that must be present
  data_types: expected type per column (int, float, str, bool)

Every run checks for missing values in all columns. Unless --no-report
is given, a color-annotated Excel report is written next to the input
file (or to the configured output directory).

Examples:
  datalint validate orders.csv --rules rules.yaml
  datalint validate orders.xlsx -r rules.json -o /tmp/report.xlsx
  datalint validate orders.csv -r '{"required_columns": ["id"]}'
  datalint validate orders.csv -r rules.yaml --strict`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateRules, "rules", "r", "", "Rules file (JSON or YAML) or inline JSON")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "", "Report path (default: <input stem>_validated.xlsx)")
	validateCmd.Flags().BoolVar(&validateNoReport, "no-report", false, "Skip writing the Excel report")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit non-zero when errors are found")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Print every finding")
	validateCmd.MarkFlagRequired("rules")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	source := args[0]
	verbose := validateVerbose || cfg.Verbose

	fmt.Printf("Validating %s...\n", source)

	run, err := runValidation(cfg, validationRequest{
		Source:     source,
		Rules:      validateRules,
		Output:     validateOutput,
		SkipReport: validateNoReport,
		Verbose:    verbose,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Checked %d row(s) across %d column(s)\n\n", run.Table.RowCount(), run.Table.ColumnCount())

	printResultSummary(run.Result)
	if verbose {
		fmt.Println()
		printFindings(run.Result)
	}

	if run.OutputPath != "" {
		fmt.Printf("\nReport written to %s\n", run.OutputPath)
	}

	if validateStrict && run.Result.HasErrors() {
		os.Exit(1)
	}

	return nil
}

// validationRequest carries one validation request through the pipeline.
type validationRequest struct {
	Source     string
	Rules      string // rules path or inline JSON
	Output     string // empty derives the path from config
	SkipReport bool
	Verbose    bool
}

// validationRun is the outcome of one validation.
type validationRun struct {
	Result     *findings.Result
	Table      *table.Table
	OutputPath string // empty when no report was written
}

// runValidation loads the data, runs the checks, writes the report, and
// records the run in the history database.
func runValidation(cfg *config.Config, req validationRequest) (*validationRun, error) {
	ruleSet, err := rules.Resolve(req.Rules)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}

	tbl, err := table.Load(req.Source)
	if err != nil {
		return nil, err
	}

	var opts []engine.Option
	if req.Verbose {
		opts = append(opts, engine.WithDiagLog(log.New(os.Stderr, "datalint: ", 0)))
	}
	eng := engine.New(opts...)
	res := eng.Validate(tbl, ruleSet)

	run := &validationRun{Result: res, Table: tbl}

	if !req.SkipReport {
		outputPath := req.Output
		if outputPath == "" {
			outputPath = cfg.OutputPath(req.Source)
		}
		rep := report.Build(res, tbl, time.Now())
		if err := report.WriteXLSX(rep, outputPath); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
		run.OutputPath = outputPath
	}

	recordRun(cfg, req, run)

	return run, nil
}

// recordRun appends the run to the history database. History failures
// do not fail the validation.
func recordRun(cfg *config.Config, req validationRequest, run *validationRun) {
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: run history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	s := run.Result.Summary()
	r := &session.Run{
		SourceFile:    req.Source,
		RulesFile:     req.Rules,
		OutputFile:    run.OutputPath,
		TotalErrors:   s.TotalErrors,
		TotalWarnings: s.TotalWarnings,
		TotalPassed:   s.TotalPassed,
	}
	if err := store.RecordRun(r); err != nil {
		fmt.Fprintf(os.Stderr, "warning: record run: %v\n", err)
	}
}

// openStore opens the run history database named by the config.
func openStore(cfg *config.Config) (*session.Store, error) {
	path := cfg.Session.Path
	if path == "" {
		path = session.DefaultPath()
	}

	store, err := session.Open(path)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
