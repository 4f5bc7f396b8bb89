package table

import "strconv"

// Kind identifies which variant a cell holds. The variant is decided once
// at load time; checks pattern-match on it instead of re-inspecting values.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindText
	KindBool
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// TypeName returns the runtime type name used in type-mismatch messages.
func (k Kind) TypeName() string {
	switch k {
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	case KindText:
		return "string"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Cell is one value of a column, tagged with its kind. Only the field
// matching Kind is meaningful; the zero value is a null cell.
type Cell struct {
	Kind  Kind
	Int   int64
	Float float64
	Text  string
	Bool  bool
}

// NullCell returns a cell holding no value.
func NullCell() Cell {
	return Cell{Kind: KindNull}
}

// IntCell returns a cell holding an integer.
func IntCell(v int64) Cell {
	return Cell{Kind: KindInt, Int: v}
}

// FloatCell returns a cell holding a floating-point number.
func FloatCell(v float64) Cell {
	return Cell{Kind: KindFloat, Float: v}
}

// TextCell returns a cell holding text. The text is kept exactly as found
// in the source, untrimmed, so empty-string detection stays meaningful.
func TextCell(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// BoolCell returns a cell holding a boolean.
func BoolCell(b bool) Cell {
	return Cell{Kind: KindBool, Bool: b}
}

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// String returns the display form of the cell. Null cells render empty.
func (c Cell) String() string {
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(c.Float, 'g', -1, 64)
	case KindText:
		return c.Text
	case KindBool:
		return strconv.FormatBool(c.Bool)
	default:
		return ""
	}
}
