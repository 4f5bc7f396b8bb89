package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/datalint/datalint/internal/table"
	"github.com/datalint/datalint/pkg/findings"
)

// Sheet names of the workbook the writer produces.
const (
	SheetData    = "Validated_Data"
	SheetSummary = "Summary"
	SheetLineage = "Data_Lineage"
)

var summaryHeader = []interface{}{"Column", "Row", "Severity", "Message", "Value"}

var lineageHeader = []interface{}{
	"source_file", "total_rows", "total_columns", "validation_timestamp",
	"total_errors", "total_warnings", "total_passed",
}

// WriteXLSX persists the report as a three-sheet workbook. Parent
// directories of path are created as needed.
func WriteXLSX(rep *Report, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the annotated data sheet.
	if err := f.SetSheetName("Sheet1", SheetData); err != nil {
		return fmt.Errorf("rename data sheet: %w", err)
	}

	if err := writeDataSheet(f, rep); err != nil {
		return err
	}
	if err := writeSummarySheet(f, rep); err != nil {
		return err
	}
	if err := writeLineageSheet(f, rep); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// writeDataSheet copies the table onto the data sheet, headers on row 1
// and data from row 2, then applies the severity fills. Data row r of the
// table lands on worksheet row r+2.
func writeDataSheet(f *excelize.File, rep *Report) error {
	for c, col := range rep.Table.Columns {
		name, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("data sheet header: %w", err)
		}
		if err := f.SetCellStr(SheetData, name, col.Name); err != nil {
			return fmt.Errorf("data sheet header: %w", err)
		}
		for r, cell := range col.Cells {
			if cell.IsNull() {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("data sheet cell: %w", err)
			}
			if err := setTypedCell(f, name, cell); err != nil {
				return fmt.Errorf("data sheet cell %s: %w", name, err)
			}
		}
	}

	styles := make(map[findings.Severity]int)
	for ref, sev := range rep.Colors {
		styleID, ok := styles[sev]
		if !ok {
			var err error
			styleID, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{ColorFor(sev)}},
			})
			if err != nil {
				return fmt.Errorf("create %s fill style: %w", sev, err)
			}
			styles[sev] = styleID
		}
		name, err := excelize.CoordinatesToCellName(ref.Col+1, ref.Row+2)
		if err != nil {
			return fmt.Errorf("color cell: %w", err)
		}
		if err := f.SetCellStyle(SheetData, name, name, styleID); err != nil {
			return fmt.Errorf("color cell %s: %w", name, err)
		}
	}
	return nil
}

// setTypedCell writes a cell preserving its typed value, so numbers stay
// numbers and text stays text in the output workbook.
func setTypedCell(f *excelize.File, name string, c table.Cell) error {
	switch c.Kind {
	case table.KindInt:
		return f.SetCellValue(SheetData, name, c.Int)
	case table.KindFloat:
		return f.SetCellValue(SheetData, name, c.Float)
	case table.KindBool:
		return f.SetCellBool(SheetData, name, c.Bool)
	default:
		return f.SetCellStr(SheetData, name, c.Text)
	}
}

func writeSummarySheet(f *excelize.File, rep *Report) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetSummary, "A1", &summaryHeader); err != nil {
		return fmt.Errorf("summary header: %w", err)
	}
	for i, row := range rep.Listing {
		name, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("summary row: %w", err)
		}
		values := []interface{}{row.Column, row.Row, row.Severity, row.Message, row.Value}
		if err := f.SetSheetRow(SheetSummary, name, &values); err != nil {
			return fmt.Errorf("summary row %d: %w", i, err)
		}
	}
	return nil
}

func writeLineageSheet(f *excelize.File, rep *Report) error {
	if _, err := f.NewSheet(SheetLineage); err != nil {
		return fmt.Errorf("create lineage sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetLineage, "A1", &lineageHeader); err != nil {
		return fmt.Errorf("lineage header: %w", err)
	}
	l := rep.Lineage
	values := []interface{}{
		l.SourceFile, l.TotalRows, l.TotalColumns,
		l.Timestamp.Format(time.RFC3339),
		l.TotalErrors, l.TotalWarnings, l.TotalPassed,
	}
	if err := f.SetSheetRow(SheetLineage, "A2", &values); err != nil {
		return fmt.Errorf("lineage row: %w", err)
	}
	return nil
}
