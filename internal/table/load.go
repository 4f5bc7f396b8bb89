package table

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the tabular file at path, dispatching on its extension.
// Supported formats are .csv and .xlsx. It returns *NotFoundError when the
// path does not exist and *FormatError for unsupported or unparseable
// sources. Column order and the cell typing found in the source are
// preserved.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	default:
		return nil, &FormatError{
			Path:   path,
			Reason: fmt.Sprintf("unsupported file format %q", filepath.Ext(path)),
		}
	}
}
