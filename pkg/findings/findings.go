// Package findings defines the classified outcomes of a validation run:
// individual findings, their severities, and the result accumulator the
// engine fills and the report renderer reads.
package findings

import (
	"strconv"
	"strings"
)

// Severity classifies a finding.
type Severity string

const (
	// SeverityError marks a finding that must be fixed.
	SeverityError Severity = "error"

	// SeverityWarning marks an advisory finding.
	SeverityWarning Severity = "warning"

	// SeverityPassed marks a confirmation that a check succeeded.
	SeverityPassed Severity = "passed"
)

// Valid returns true if the severity is a recognized value.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityPassed:
		return true
	}
	return false
}

// Title returns the title-cased form used in rendered listings,
// e.g. "error" -> "Error".
func (s Severity) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Finding is a single reported outcome of a check. Column is empty for
// table-wide findings. Row is nil when the finding applies to a whole
// column or the whole table; otherwise it is a zero-based row index.
// Value carries the offending raw value and is only populated for
// type-mismatch errors.
type Finding struct {
	Message  string   `json:"message"`
	Column   string   `json:"column"`
	Row      *int     `json:"row,omitempty"`
	Severity Severity `json:"severity"`
	Value    string   `json:"value,omitempty"`
}

// Error creates an error finding for a column.
func Error(message, column string) Finding {
	return Finding{Message: message, Column: column, Severity: SeverityError}
}

// Warning creates a warning finding for a column.
func Warning(message, column string) Finding {
	return Finding{Message: message, Column: column, Severity: SeverityWarning}
}

// Passed creates a passed finding for a column.
func Passed(message, column string) Finding {
	return Finding{Message: message, Column: column, Severity: SeverityPassed}
}

// AtRow returns a copy of the finding bound to a zero-based row index.
func (f Finding) AtRow(row int) Finding {
	f.Row = &row
	return f
}

// WithValue returns a copy of the finding carrying the offending raw value.
func (f Finding) WithValue(value string) Finding {
	f.Value = value
	return f
}

// HasRow reports whether the finding targets a concrete row.
func (f Finding) HasRow() bool {
	return f.Row != nil
}

// RowLabel returns the row index as text, or "All" for column- and
// table-wide findings.
func (f Finding) RowLabel() string {
	if f.Row == nil {
		return "All"
	}
	return strconv.Itoa(*f.Row)
}
