package table

import "testing"

func TestCell_String(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"int", IntCell(30), "30"},
		{"negative int", IntCell(-7), "-7"},
		{"integral float", FloatCell(30.0), "30"},
		{"fractional float", FloatCell(3.5), "3.5"},
		{"text", TextCell("hello"), "hello"},
		{"whitespace text preserved", TextCell("  "), "  "},
		{"bool true", BoolCell(true), "true"},
		{"bool false", BoolCell(false), "false"},
		{"null renders empty", NullCell(), ""},
		{"zero value is null", Cell{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.String(); got != tt.want {
				t.Errorf("Cell.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKind_TypeName(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInt, "int64"},
		{KindFloat, "float64"},
		{KindText, "string"},
		{KindBool, "bool"},
		{KindNull, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.TypeName(); got != tt.want {
				t.Errorf("Kind(%v).TypeName() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestCell_IsNull(t *testing.T) {
	if !NullCell().IsNull() {
		t.Error("NullCell().IsNull() = false, want true")
	}
	if TextCell("").IsNull() {
		t.Error(`TextCell("").IsNull() = true, want false`)
	}
	if IntCell(0).IsNull() {
		t.Error("IntCell(0).IsNull() = true, want false")
	}
}
