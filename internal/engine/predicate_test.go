package engine

import (
	"math"
	"testing"

	"github.com/datalint/datalint/internal/rules"
	"github.com/datalint/datalint/internal/table"
)

func TestMatchesType_Int(t *testing.T) {
	tests := []struct {
		name string
		cell table.Cell
		want bool
	}{
		{"native int", table.IntCell(30), true},
		{"negative int", table.IntCell(-7), true},
		{"integral float", table.FloatCell(30.0), true},
		{"negative integral float", table.FloatCell(-2.0), true},
		{"fractional float", table.FloatCell(3.5), false},
		{"NaN float", table.FloatCell(math.NaN()), false},
		{"positive infinity", table.FloatCell(math.Inf(1)), false},
		{"negative infinity", table.FloatCell(math.Inf(-1)), false},
		{"integer string", table.TextCell("30"), true},
		{"integer string with spaces", table.TextCell(" 30 "), true},
		{"signed integer string", table.TextCell("+5"), true},
		{"decimal string", table.TextCell("3.5"), false},
		{"word string", table.TextCell("abc"), false},
		{"bool", table.BoolCell(true), false},
		{"null", table.NullCell(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesType(tt.cell, rules.TypeInt); got != tt.want {
				t.Errorf("matchesType(%v, int) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestMatchesType_Float(t *testing.T) {
	tests := []struct {
		name string
		cell table.Cell
		want bool
	}{
		{"native int", table.IntCell(30), true},
		{"fractional float", table.FloatCell(3.5), true},
		{"float string", table.TextCell("3.5"), true},
		{"integer string", table.TextCell("30"), true},
		{"scientific notation string", table.TextCell("1e3"), true},
		{"inf string", table.TextCell("inf"), true},
		{"word string", table.TextCell("abc"), false},
		{"bool", table.BoolCell(true), false},
		{"null", table.NullCell(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesType(tt.cell, rules.TypeFloat); got != tt.want {
				t.Errorf("matchesType(%v, float) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestMatchesType_Str(t *testing.T) {
	tests := []struct {
		name string
		cell table.Cell
		want bool
	}{
		{"text", table.TextCell("hello"), true},
		{"numeric-looking text", table.TextCell("30"), true},
		{"int never passes str", table.IntCell(30), false},
		{"float never passes str", table.FloatCell(3.5), false},
		{"bool never passes str", table.BoolCell(true), false},
		{"null", table.NullCell(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesType(tt.cell, rules.TypeStr); got != tt.want {
				t.Errorf("matchesType(%v, str) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestMatchesType_Bool(t *testing.T) {
	tests := []struct {
		name string
		cell table.Cell
		want bool
	}{
		{"bool true", table.BoolCell(true), true},
		{"bool false", table.BoolCell(false), true},
		{"int is not bool", table.IntCell(1), false},
		{"text literal is not bool", table.TextCell("true"), false},
		{"null", table.NullCell(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesType(tt.cell, rules.TypeBool); got != tt.want {
				t.Errorf("matchesType(%v, bool) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestMatchesType_UnrecognizedTagAcceptsEverything(t *testing.T) {
	cells := []table.Cell{
		table.IntCell(1),
		table.FloatCell(3.5),
		table.TextCell("x"),
		table.BoolCell(false),
		table.NullCell(),
	}
	for _, c := range cells {
		if !matchesType(c, rules.TypeTag("datetime")) {
			t.Errorf("matchesType(%v, datetime) = false, want true", c)
		}
	}
}
