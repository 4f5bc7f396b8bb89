package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/datalint/datalint/internal/rules"
	"github.com/datalint/datalint/internal/table"
)

// matchesType is the type predicate: a pure pattern match on the cell's
// kind. Malformed numeric strings are predicate failures, not a distinct
// error kind. Unrecognized tags always match; the caller emits the
// diagnostic. The caller filters missing cells, so null never reaches here
// in practice and fails every recognized tag if it does.
func matchesType(c table.Cell, tag rules.TypeTag) bool {
	switch tag {
	case rules.TypeInt:
		switch c.Kind {
		case table.KindInt:
			return true
		case table.KindFloat:
			// Integral floats qualify; NaN and infinities do not.
			return !math.IsNaN(c.Float) && !math.IsInf(c.Float, 0) && c.Float == math.Trunc(c.Float)
		case table.KindText:
			_, err := strconv.ParseInt(strings.TrimSpace(c.Text), 10, 64)
			return err == nil
		default:
			return false
		}

	case rules.TypeFloat:
		switch c.Kind {
		case table.KindInt, table.KindFloat:
			return true
		case table.KindText:
			_, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
			return err == nil
		default:
			return false
		}

	case rules.TypeStr:
		return c.Kind == table.KindText

	case rules.TypeBool:
		return c.Kind == table.KindBool

	default:
		return true
	}
}
