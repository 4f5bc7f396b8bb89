package table

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// loadXLSX reads the first sheet of a workbook, treating the first row as
// the header. Cell kinds follow the stored cell types: boolean cells load
// as bool, string cells as text (even when they look numeric), numeric
// cells as int when integral and float otherwise, blank cells as null. A
// workbook whose first sheet is empty loads as a zero-column table, which
// the engine reports as containing no data.
func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FormatError{Path: path, Reason: "not a readable workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &FormatError{Path: path, Reason: "workbook has no sheets"}
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &FormatError{Path: path, Reason: "cannot read sheet", Err: err}
	}
	if len(rows) == 0 {
		return New(path), nil
	}

	header := rows[0]
	data := rows[1:]

	cols := make([]Column, len(header))
	for i, name := range header {
		cells := make([]Cell, len(data))
		for row, record := range data {
			raw := ""
			if i < len(record) {
				raw = record[i]
			}
			cellName, _ := excelize.CoordinatesToCellName(i+1, row+2)
			cellType, _ := f.GetCellType(sheet, cellName)
			cells[row] = convertXLSXCell(raw, cellType)
		}
		cols[i] = Column{Name: name, Cells: cells}
	}

	return New(path, cols...), nil
}

func convertXLSXCell(raw string, cellType excelize.CellType) Cell {
	switch cellType {
	case excelize.CellTypeBool:
		return BoolCell(raw == "TRUE" || raw == "true" || raw == "1")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return TextCell(raw)
	}

	// Plain numeric cells carry no type attribute in the file, so anything
	// left is classified by parsing the stored value.
	if raw == "" {
		return NullCell()
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntCell(v)
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return FloatCell(v)
	}
	return TextCell(raw)
}
