package report

import (
	"testing"
	"time"

	"github.com/datalint/datalint/internal/table"
	"github.com/datalint/datalint/pkg/findings"
)

func sampleTable() *table.Table {
	return table.New("orders.csv",
		table.Column{Name: "id", Cells: []table.Cell{table.IntCell(1), table.IntCell(2)}},
		table.Column{Name: "name", Cells: []table.Cell{table.TextCell("A"), table.NullCell()}},
	)
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		severity findings.Severity
		want     string
	}{
		{findings.SeverityError, "FFCCCC"},
		{findings.SeverityWarning, "FFFFCC"},
		{findings.SeverityPassed, "CCFFCC"},
		{findings.Severity("bogus"), ""},
	}
	for _, tt := range tests {
		if got := ColorFor(tt.severity); got != tt.want {
			t.Errorf("ColorFor(%q) = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestBuild_Listing(t *testing.T) {
	res := findings.NewResult("orders.csv")
	res.Add(findings.Error("Invalid data type. Expected int, got string", "id").AtRow(1).WithValue("abc"))
	res.Add(findings.Warning("Column contains only missing values", "name"))
	res.Add(findings.Passed("Required column present", "id"))

	rep := Build(res, sampleTable(), time.Now())

	want := []ListingRow{
		{Column: "id", Row: "1", Severity: "Error", Message: "Invalid data type. Expected int, got string", Value: "abc"},
		{Column: "name", Row: "All", Severity: "Warning", Message: "Column contains only missing values", Value: ""},
		{Column: "id", Row: "All", Severity: "Passed", Message: "Required column present", Value: ""},
	}
	if len(rep.Listing) != len(want) {
		t.Fatalf("listing has %d rows, want %d", len(rep.Listing), len(want))
	}
	for i, w := range want {
		if rep.Listing[i] != w {
			t.Errorf("listing[%d] = %+v, want %+v", i, rep.Listing[i], w)
		}
	}
}

func TestBuild_ColorsLastWriteWins(t *testing.T) {
	res := findings.NewResult("orders.csv")
	// Same cell flagged as error and passed. Passed is applied after
	// errors, so it must win.
	res.Add(findings.Error("Missing value (null/NaN)", "name").AtRow(1))
	res.Add(findings.Passed("Valid str value", "name").AtRow(1))

	rep := Build(res, sampleTable(), time.Now())

	got, ok := rep.Colors[CellRef{Row: 1, Col: 1}]
	if !ok {
		t.Fatal("cell (1,1) has no color")
	}
	if got != findings.SeverityPassed {
		t.Errorf("cell (1,1) severity = %q, want %q", got, findings.SeverityPassed)
	}
}

func TestBuild_ColorsSkipUnmappable(t *testing.T) {
	res := findings.NewResult("orders.csv")
	res.Add(findings.Error("Required column missing", "ghost"))            // no row
	res.Add(findings.Error("Missing value (null/NaN)", "ghost").AtRow(0))  // unknown column
	res.Add(findings.Passed("Valid int value", "id").AtRow(0))

	rep := Build(res, sampleTable(), time.Now())

	if len(rep.Colors) != 1 {
		t.Fatalf("got %d colored cells, want 1: %v", len(rep.Colors), rep.Colors)
	}
	if got := rep.Colors[CellRef{Row: 0, Col: 0}]; got != findings.SeverityPassed {
		t.Errorf("cell (0,0) severity = %q, want %q", got, findings.SeverityPassed)
	}
}

func TestBuild_DistinctCellsKeepDistinctColors(t *testing.T) {
	res := findings.NewResult("orders.csv")
	res.Add(findings.Error("Invalid data type. Expected int, got string", "id").AtRow(0))
	res.Add(findings.Passed("Valid int value", "id").AtRow(1))

	rep := Build(res, sampleTable(), time.Now())

	if got := rep.Colors[CellRef{Row: 0, Col: 0}]; got != findings.SeverityError {
		t.Errorf("cell (0,0) severity = %q, want %q", got, findings.SeverityError)
	}
	if got := rep.Colors[CellRef{Row: 1, Col: 0}]; got != findings.SeverityPassed {
		t.Errorf("cell (1,0) severity = %q, want %q", got, findings.SeverityPassed)
	}
}

func TestBuild_Lineage(t *testing.T) {
	res := findings.NewResult("orders.csv")
	res.AddError("Required column missing", "ghost")
	res.AddWarning("Column contains only missing values", "name")
	res.AddPassed("Required column present", "id")
	res.AddPassed("2 valid values", "id")

	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	rep := Build(res, sampleTable(), now)

	l := rep.Lineage
	if l.SourceFile != "orders.csv" {
		t.Errorf("SourceFile = %q, want %q", l.SourceFile, "orders.csv")
	}
	if l.TotalRows != 2 || l.TotalColumns != 2 {
		t.Errorf("dimensions = %dx%d, want 2x2", l.TotalRows, l.TotalColumns)
	}
	if !l.Timestamp.Equal(now) {
		t.Errorf("Timestamp = %v, want %v", l.Timestamp, now)
	}
	if l.TotalErrors != 1 || l.TotalWarnings != 1 || l.TotalPassed != 2 {
		t.Errorf("totals = %d/%d/%d, want 1/1/2", l.TotalErrors, l.TotalWarnings, l.TotalPassed)
	}
}
