package main

import (
	"strings"
	"testing"
	"time"

	"github.com/datalint/datalint/internal/session"
	"github.com/datalint/datalint/pkg/findings"
)

func TestFindingLine(t *testing.T) {
	tests := []struct {
		name     string
		finding  findings.Finding
		expected string
	}{
		{
			name:     "column-wide error",
			finding:  findings.Error("Missing required column", "email"),
			expected: "[error] email row All: Missing required column",
		},
		{
			name:     "row error with value",
			finding:  findings.Error("Invalid data type. Expected int, got string", "age").AtRow(3).WithValue("abc"),
			expected: "[error] age row 3: Invalid data type. Expected int, got string (value: abc)",
		},
		{
			name:     "table-wide finding uses dash for column",
			finding:  findings.Warning("File is empty", ""),
			expected: "[warning] - row All: File is empty",
		},
		{
			name:     "passed check",
			finding:  findings.Passed("All required columns present", "id"),
			expected: "[passed] id row All: All required columns present",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findingLine(tt.finding); got != tt.expected {
				t.Errorf("findingLine() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestResultLines(t *testing.T) {
	res := findings.NewResult("orders.csv")
	res.Add(findings.Error("Missing required column", "email"))
	res.Add(findings.Warning("Missing value", "name").AtRow(2))
	res.Add(findings.Passed("Column exists", "id"))

	lines := resultLines(res, "orders_validated.xlsx")

	want := []string{
		"Validated orders.csv: 1 error(s), 1 warning(s), 1 passed",
		"  [error] email row All: Missing required column",
		"  [warning] name row 2: Missing value",
		"Report written to orders_validated.xlsx",
	}

	if len(lines) != len(want) {
		t.Fatalf("resultLines() returned %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestResultLines_NoReport(t *testing.T) {
	res := findings.NewResult("orders.csv")
	res.Add(findings.Passed("Column exists", "id"))

	lines := resultLines(res, "")

	if len(lines) != 1 {
		t.Fatalf("resultLines() returned %d lines, want 1: %v", len(lines), lines)
	}
	for _, line := range lines {
		if strings.Contains(line, "Report written") {
			t.Errorf("resultLines() mentions a report that was not written: %q", line)
		}
	}
}

func TestRunHistoryLines(t *testing.T) {
	created := time.Now().Add(-2 * time.Hour)
	runs := []session.Run{
		{
			ID:            "a1b2c3d4-0000-0000-0000-000000000000",
			SourceFile:    "orders.csv",
			TotalErrors:   2,
			TotalWarnings: 1,
			TotalPassed:   5,
			OutputFile:    "orders_validated.xlsx",
			CreatedAt:     created,
		},
		{
			ID:          "e5f6a7b8-0000-0000-0000-000000000000",
			SourceFile:  "users.csv",
			TotalPassed: 3,
			CreatedAt:   created,
		},
	}

	lines := runHistoryLines(runs)

	if len(lines) != 3 {
		t.Fatalf("runHistoryLines() returned %d lines, want 3: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "a1b2c3d4") {
		t.Errorf("lines[0] = %q, want id prefix", lines[0])
	}
	if strings.Contains(lines[0], "a1b2c3d4-") {
		t.Errorf("lines[0] = %q, id should be truncated to 8 characters", lines[0])
	}
	if !strings.Contains(lines[0], "orders.csv: 2 error(s), 1 warning(s), 5 passed") {
		t.Errorf("lines[0] = %q, want run counts for orders.csv", lines[0])
	}
	if !strings.Contains(lines[0], "ago)") {
		t.Errorf("lines[0] = %q, want elapsed time", lines[0])
	}
	if !strings.Contains(lines[1], "report: orders_validated.xlsx") {
		t.Errorf("lines[1] = %q, want report path line", lines[1])
	}
	if !strings.Contains(lines[2], "users.csv: 0 error(s), 0 warning(s), 3 passed") {
		t.Errorf("lines[2] = %q, want run counts for users.csv", lines[2])
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{"seconds", 45 * time.Second, "45s"},
		{"minutes", 5 * time.Minute, "5m"},
		{"whole hours", 2 * time.Hour, "2h"},
		{"hours and minutes", 2*time.Hour + 30*time.Minute, "2h30m"},
		{"days", 3 * 24 * time.Hour, "3d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.expected {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.expected)
			}
		})
	}
}
