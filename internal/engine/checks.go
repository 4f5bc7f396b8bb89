package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/datalint/datalint/internal/rules"
	"github.com/datalint/datalint/internal/table"
	"github.com/datalint/datalint/pkg/findings"
)

// isNullMissing reports the table's null/absent marker: a null cell, or a
// floating NaN, which sources that cannot represent absence fall back to.
func isNullMissing(c table.Cell) bool {
	return c.IsNull() || (c.Kind == table.KindFloat && math.IsNaN(c.Float))
}

// isEmptyMissing reports a non-null text cell that trims to the empty
// string. Non-text cells never match: their display form is never empty.
func isEmptyMissing(c table.Cell) bool {
	return !isNullMissing(c) && c.Kind == table.KindText && strings.TrimSpace(c.Text) == ""
}

func isMissing(c table.Cell) bool {
	return isNullMissing(c) || isEmptyMissing(c)
}

// checkRequiredColumns reports an error for every required column absent
// from the table and a confirmation for every one present. Missing names
// are sorted for determinism; present ones keep the order they were given
// in the rule set.
func checkRequiredColumns(tbl *table.Table, required []string) []findings.Finding {
	var out []findings.Finding

	seen := make(map[string]struct{})
	var missing []string
	for _, name := range required {
		if tbl.HasColumn(name) {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		missing = append(missing, name)
	}
	sort.Strings(missing)
	for _, name := range missing {
		out = append(out, findings.Error("Required column missing", name))
	}

	for _, name := range required {
		if tbl.HasColumn(name) {
			out = append(out, findings.Passed("Required column present", name))
		}
	}

	return out
}

// checkMissingValues scans every column of the table in table order. Each
// null or trimmed-empty cell yields one error at its (column, row); a cell
// is never both. Columns with at least one remaining valid cell get a
// single aggregate confirmation.
func checkMissingValues(tbl *table.Table) []findings.Finding {
	var out []findings.Finding

	for _, col := range tbl.Columns {
		nullCount, emptyCount := 0, 0
		for row, cell := range col.Cells {
			switch {
			case isNullMissing(cell):
				out = append(out, findings.Error("Missing value (null/NaN)", col.Name).AtRow(row))
				nullCount++
			case isEmptyMissing(cell):
				out = append(out, findings.Error("Missing value (empty string)", col.Name).AtRow(row))
				emptyCount++
			}
		}
		if valid := len(col.Cells) - nullCount - emptyCount; valid > 0 {
			out = append(out, findings.Passed(fmt.Sprintf("%d valid values", valid), col.Name))
		}
	}

	return out
}

// checkTypes evaluates the type predicate for each rule in rule order.
// Missing cells were already penalized by the missing-value pass and are
// dropped from consideration here.
func (e *Engine) checkTypes(tbl *table.Table, typeRules []rules.TypeRule) []findings.Finding {
	var out []findings.Finding

	for _, rule := range typeRules {
		col, ok := tbl.Column(rule.Column)
		if !ok {
			out = append(out, findings.Error("Column not found in data", rule.Column))
			continue
		}

		if !rule.Tag.Valid() {
			e.diag.Printf("unknown data type %q for column %q, accepting all values", rule.Tag, rule.Column)
		}

		checked := 0
		for row, cell := range col.Cells {
			if isMissing(cell) {
				continue
			}
			checked++
			if matchesType(cell, rule.Tag) {
				out = append(out, findings.Passed(
					fmt.Sprintf("Valid %s value", rule.Tag), rule.Column).AtRow(row))
			} else {
				out = append(out, findings.Error(
					fmt.Sprintf("Invalid data type. Expected %s, got %s", rule.Tag, cell.Kind.TypeName()),
					rule.Column).AtRow(row).WithValue(cell.String()))
			}
		}
		if checked == 0 {
			out = append(out, findings.Warning("Column contains only missing values", rule.Column))
		}
	}

	return out
}
