package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/datalint/datalint/pkg/findings"
)

// printStatus prints a status line with color
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}

// printResultSummary prints the colored finding counts for a run.
func printResultSummary(res *findings.Result) {
	s := res.Summary()

	if s.TotalErrors > 0 {
		printStatus("✗", fmt.Sprintf("%d error(s)", s.TotalErrors), color.FgRed)
	}
	if s.TotalWarnings > 0 {
		printStatus("⚠", fmt.Sprintf("%d warning(s)", s.TotalWarnings), color.FgYellow)
	}
	printStatus("✓", fmt.Sprintf("%d check(s) passed", s.TotalPassed), color.FgGreen)
}

// printFindings prints every finding, errors first.
func printFindings(res *findings.Result) {
	for _, f := range res.All() {
		fmt.Println("  " + findingLine(f))
	}
}

// findingLine formats one finding for terminal or shell output.
func findingLine(f findings.Finding) string {
	loc := f.Column
	if loc == "" {
		loc = "-"
	}
	line := fmt.Sprintf("[%s] %s row %s: %s", f.Severity, loc, f.RowLabel(), f.Message)
	if f.Value != "" {
		line += fmt.Sprintf(" (value: %s)", f.Value)
	}
	return line
}

// resultLines renders a run summary as plain lines for the shell.
func resultLines(res *findings.Result, outputPath string) []string {
	s := res.Summary()

	lines := []string{
		fmt.Sprintf("Validated %s: %d error(s), %d warning(s), %d passed",
			res.SourceFile, s.TotalErrors, s.TotalWarnings, s.TotalPassed),
	}
	for _, f := range res.Errors {
		lines = append(lines, "  "+findingLine(f))
	}
	for _, f := range res.Warnings {
		lines = append(lines, "  "+findingLine(f))
	}
	if outputPath != "" {
		lines = append(lines, "Report written to "+outputPath)
	}
	return lines
}
