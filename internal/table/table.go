// Package table holds the in-memory tabular data model and the file
// loaders that produce it. A table is an ordered sequence of named,
// equal-length columns of tagged cells; rows are identified only by their
// zero-based position.
package table

// Column is an ordered sequence of cells under a name.
type Column struct {
	Name  string
	Cells []Cell
}

// Table is an ordered collection of equal-length columns loaded from one
// source. Source is an opaque identifier (usually the file path) threaded
// through to results and reports.
type Table struct {
	Source  string
	Columns []Column
}

// New builds a table over the given columns, padding shorter columns with
// null cells so every column has the same length.
func New(source string, cols ...Column) *Table {
	rows := 0
	for _, c := range cols {
		if len(c.Cells) > rows {
			rows = len(c.Cells)
		}
	}
	for i := range cols {
		for len(cols[i].Cells) < rows {
			cols[i].Cells = append(cols[i].Cells, NullCell())
		}
	}
	return &Table{Source: source, Columns: cols}
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the first column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnIndex returns the position of the named column in table order,
// or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return i
		}
	}
	return -1
}
