package table

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
)

// Tokens that load as null cells, alongside the empty field. Whitespace-only
// fields are NOT null: they stay text so empty-string detection can fire.
var csvNullTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
}

func isCSVNull(field string) bool {
	_, ok := csvNullTokens[field]
	return ok
}

// loadCSV reads a CSV file whose first record is the header. Cell typing is
// inferred per column over the non-null fields: a column where every field
// parses as a base-10 integer loads as int, every field as a float loads as
// float, every field a true/false literal loads as bool, anything else as
// text. Text fields are kept untrimmed.
func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FormatError{Path: path, Reason: "cannot open file", Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, &FormatError{Path: path, Reason: "malformed csv", Err: err}
	}
	if len(records) == 0 {
		return nil, &FormatError{Path: path, Reason: "file has no header row"}
	}

	header := records[0]
	data := records[1:]

	cols := make([]Column, len(header))
	for i, name := range header {
		fields := make([]string, len(data))
		present := make([]bool, len(data))
		for row, record := range data {
			if i < len(record) {
				fields[row] = record[i]
				present[row] = true
			}
		}

		kind := inferColumnKind(fields, present)
		cells := make([]Cell, len(data))
		for row := range data {
			cells[row] = convertField(fields[row], present[row], kind)
		}
		cols[i] = Column{Name: name, Cells: cells}
	}

	return New(path, cols...), nil
}

// inferColumnKind picks the narrowest kind every non-null field of a column
// satisfies, in the order bool, int, float, text.
func inferColumnKind(fields []string, present []bool) Kind {
	allInt, allFloat, allBool := true, true, true
	seen := false

	for i, field := range fields {
		if !present[i] || isCSVNull(field) {
			continue
		}
		seen = true
		trimmed := strings.TrimSpace(field)
		if allInt {
			if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
				allFloat = false
			}
		}
		if allBool && !isBoolLiteral(trimmed) {
			allBool = false
		}
		if !allInt && !allFloat && !allBool {
			return KindText
		}
	}

	if !seen {
		return KindText
	}
	if allBool {
		return KindBool
	}
	if allInt {
		return KindInt
	}
	if allFloat {
		return KindFloat
	}
	return KindText
}

func isBoolLiteral(s string) bool {
	switch s {
	case "true", "True", "TRUE", "false", "False", "FALSE":
		return true
	}
	return false
}

func convertField(field string, present bool, kind Kind) Cell {
	if !present || isCSVNull(field) {
		return NullCell()
	}
	trimmed := strings.TrimSpace(field)
	switch kind {
	case KindInt:
		v, _ := strconv.ParseInt(trimmed, 10, 64)
		return IntCell(v)
	case KindFloat:
		v, _ := strconv.ParseFloat(trimmed, 64)
		return FloatCell(v)
	case KindBool:
		return BoolCell(strings.EqualFold(trimmed, "true"))
	default:
		return TextCell(field)
	}
}
