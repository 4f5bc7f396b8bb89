// Package report renders a validation result into a three-part report: an
// annotated copy of the data, a flat findings listing, and a lineage
// record, and persists it as a color-coded workbook.
package report

import (
	"time"

	"github.com/datalint/datalint/internal/table"
	"github.com/datalint/datalint/pkg/findings"
)

// Cell fill colors by severity.
const (
	ColorError   = "FFCCCC" // light red
	ColorWarning = "FFFFCC" // light yellow
	ColorPassed  = "CCFFCC" // light green
)

// ColorFor returns the fill color for a severity, or "" for severities
// that never color cells.
func ColorFor(s findings.Severity) string {
	switch s {
	case findings.SeverityError:
		return ColorError
	case findings.SeverityWarning:
		return ColorWarning
	case findings.SeverityPassed:
		return ColorPassed
	default:
		return ""
	}
}

// CellRef addresses one data cell by zero-based row and column position.
type CellRef struct {
	Row int
	Col int
}

// ListingRow is one line of the findings listing.
type ListingRow struct {
	Column   string
	Row      string
	Severity string
	Message  string
	Value    string
}

// Lineage is the provenance record of a validation run.
type Lineage struct {
	SourceFile    string
	TotalRows     int
	TotalColumns  int
	Timestamp     time.Time
	TotalErrors   int
	TotalWarnings int
	TotalPassed   int
}

// Report is the rendered model of one validation run, ready for a writer.
// The table content is carried unmodified; Colors annotates it per cell.
type Report struct {
	Table   *table.Table
	Colors  map[CellRef]findings.Severity
	Listing []ListingRow
	Lineage Lineage
}

// Build assembles the report model. The listing concatenates errors, then
// warnings, then passed. Cell colors are assigned in the same order, so
// when several findings target one cell the last severity written wins.
// Findings without a row, or naming a column the table does not have,
// color nothing.
func Build(res *findings.Result, tbl *table.Table, now time.Time) *Report {
	rep := &Report{
		Table:  tbl,
		Colors: make(map[CellRef]findings.Severity),
	}

	all := res.All()

	rep.Listing = make([]ListingRow, 0, len(all))
	for _, f := range all {
		rep.Listing = append(rep.Listing, ListingRow{
			Column:   f.Column,
			Row:      f.RowLabel(),
			Severity: f.Severity.Title(),
			Message:  f.Message,
			Value:    f.Value,
		})
	}

	for _, f := range all {
		if f.Row == nil {
			continue
		}
		col := tbl.ColumnIndex(f.Column)
		if col < 0 {
			continue
		}
		rep.Colors[CellRef{Row: *f.Row, Col: col}] = f.Severity
	}

	s := res.Summary()
	rep.Lineage = Lineage{
		SourceFile:    res.SourceFile,
		TotalRows:     tbl.RowCount(),
		TotalColumns:  tbl.ColumnCount(),
		Timestamp:     now,
		TotalErrors:   s.TotalErrors,
		TotalWarnings: s.TotalWarnings,
		TotalPassed:   s.TotalPassed,
	}

	return rep
}
