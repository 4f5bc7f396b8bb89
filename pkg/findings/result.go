package findings

// Result accumulates the findings of one validation run. The three
// sequences are append-only and keep processing order; entries are never
// reordered or deduplicated. A result has a single writer for the duration
// of a run and is read-only afterwards.
type Result struct {
	SourceFile string    `json:"source_file"`
	Errors     []Finding `json:"errors"`
	Warnings   []Finding `json:"warnings"`
	Passed     []Finding `json:"passed"`
}

// NewResult creates an empty result for the given source identifier. The
// identifier is opaque to the checks and is threaded through for reporting.
func NewResult(sourceFile string) *Result {
	return &Result{SourceFile: sourceFile}
}

// Add appends a finding to the sequence matching its severity. Findings
// with an unrecognized severity are dropped.
func (r *Result) Add(f Finding) {
	switch f.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, f)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	case SeverityPassed:
		r.Passed = append(r.Passed, f)
	}
}

// Append merges a batch of findings, preserving their order.
func (r *Result) Append(fs ...Finding) {
	for _, f := range fs {
		r.Add(f)
	}
}

// AddError records an error finding without a row. Use the Error builder
// with AtRow/WithValue for cell-level errors.
func (r *Result) AddError(message, column string) {
	r.Add(Error(message, column))
}

// AddWarning records a warning finding without a row.
func (r *Result) AddWarning(message, column string) {
	r.Add(Warning(message, column))
}

// AddPassed records a passed finding without a row.
func (r *Result) AddPassed(message, column string) {
	r.Add(Passed(message, column))
}

// HasErrors reports whether any errors were recorded.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// All returns errors, warnings, and passed concatenated in that order,
// which is also the order listings and cell coloring process them in.
func (r *Result) All() []Finding {
	out := make([]Finding, 0, len(r.Errors)+len(r.Warnings)+len(r.Passed))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	out = append(out, r.Passed...)
	return out
}

// Summary is the aggregate view of a result.
type Summary struct {
	SourceFile    string `json:"source_file"`
	TotalErrors   int    `json:"total_errors"`
	TotalWarnings int    `json:"total_warnings"`
	TotalPassed   int    `json:"total_passed"`
	TotalIssues   int    `json:"total_issues"`
}

// Summary derives the aggregate counts from the current state. TotalIssues
// counts errors and warnings; passed confirmations are not issues.
func (r *Result) Summary() Summary {
	return Summary{
		SourceFile:    r.SourceFile,
		TotalErrors:   len(r.Errors),
		TotalWarnings: len(r.Warnings),
		TotalPassed:   len(r.Passed),
		TotalIssues:   len(r.Errors) + len(r.Warnings),
	}
}
