package table

import "fmt"

// NotFoundError reports a source path that does not resolve to a file.
// It aborts a validation run before any checks execute.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// FormatError reports a source that cannot be loaded as tabular data,
// either because its extension is unsupported or its content is
// unparseable. Like NotFoundError it aborts a run before any checks.
type FormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
