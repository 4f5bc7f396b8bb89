// Package engine evaluates a rule set against a table and accumulates
// classified findings. Validation runs as three sequential passes with a
// fixed merge order, so a given table and rule set always produce the same
// result.
package engine

import (
	"io"
	"log"

	"github.com/datalint/datalint/internal/rules"
	"github.com/datalint/datalint/internal/table"
	"github.com/datalint/datalint/pkg/findings"
)

// Engine runs validation passes. It keeps no state between runs beyond its
// configuration, so one engine can validate many files.
type Engine struct {
	diag *log.Logger
}

// Option configures an engine.
type Option func(*Engine)

// WithDiagLog routes diagnostics, such as unrecognized type tags, to the
// given logger instead of discarding them.
func WithDiagLog(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.diag = l
		}
	}
}

// New creates an engine. Without options, diagnostics are discarded.
func New(opts ...Option) *Engine {
	e := &Engine{diag: log.New(io.Discard, "", 0)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateFile loads the table at path and validates it against rs. Load
// failures (*table.NotFoundError, *table.FormatError) abort the run before
// any findings exist.
func (e *Engine) ValidateFile(path string, rs rules.Set) (*findings.Result, error) {
	tbl, err := table.Load(path)
	if err != nil {
		return nil, err
	}
	return e.Validate(tbl, rs), nil
}

// Validate runs the checking passes over tbl in a fixed order: required
// columns, missing values, type conformance. Each pass returns its own
// findings slice and the slices merge into the result in that order. A
// table with no rows short-circuits to a single warning.
func (e *Engine) Validate(tbl *table.Table, rs rules.Set) *findings.Result {
	res := findings.NewResult(tbl.Source)

	if tbl.RowCount() == 0 {
		res.AddWarning("File contains no data", "")
		return res
	}

	if len(rs.RequiredColumns) > 0 {
		res.Append(checkRequiredColumns(tbl, rs.RequiredColumns)...)
	}
	res.Append(checkMissingValues(tbl)...)
	if len(rs.Types) > 0 {
		res.Append(e.checkTypes(tbl, rs.Types)...)
	}

	return res
}
