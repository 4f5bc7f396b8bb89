// Package rules defines the validation rule set and parses it from JSON or
// YAML sources. Parsing preserves the document order of data_types entries
// because the type pass processes rules in that order.
package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// TypeTag names an expected column type in a rule set.
type TypeTag string

const (
	TypeInt   TypeTag = "int"
	TypeFloat TypeTag = "float"
	TypeStr   TypeTag = "str"
	TypeBool  TypeTag = "bool"
)

// Valid reports whether the tag is one the engine recognizes. Unrecognized
// tags are not rejected at parse time; the engine treats them as
// always-valid and emits a diagnostic instead.
func (t TypeTag) Valid() bool {
	switch t {
	case TypeInt, TypeFloat, TypeStr, TypeBool:
		return true
	}
	return false
}

// TypeRule binds a column name to its expected type tag.
type TypeRule struct {
	Column string
	Tag    TypeTag
}

// Set is one validation configuration. Both parts are optional. Types
// keeps the order the rules appeared in the source document.
type Set struct {
	RequiredColumns []string
	Types           []TypeRule
}

// IsEmpty reports whether the set contains no rules at all.
func (s Set) IsEmpty() bool {
	return len(s.RequiredColumns) == 0 && len(s.Types) == 0
}

// Resolve interprets a rules argument from the command line: an inline JSON
// object when it starts with '{', otherwise a path to a rules file.
func Resolve(arg string) (Set, error) {
	if strings.HasPrefix(strings.TrimSpace(arg), "{") {
		return ParseJSON([]byte(arg))
	}
	return LoadFile(arg)
}

// LoadFile reads a rule set from a .json, .yaml, or .yml file.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read rules file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Set{}, fmt.Errorf("unsupported rules file format %q", filepath.Ext(path))
	}
}

// ParseJSON parses a rule set from a JSON object. Only the two recognized
// top-level keys are read; anything else is ignored. The decoder walks
// tokens rather than unmarshalling into a map so data_types keeps its
// document order.
func ParseJSON(data []byte) (Set, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	var s Set

	tok, err := dec.Token()
	if err != nil {
		return s, fmt.Errorf("parse rules: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return s, fmt.Errorf("parse rules: top level must be an object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return s, fmt.Errorf("parse rules: %w", err)
		}
		key, _ := keyTok.(string)
		switch key {
		case "required_columns":
			if err := dec.Decode(&s.RequiredColumns); err != nil {
				return s, fmt.Errorf("parse rules: required_columns must be a list of strings: %w", err)
			}
		case "data_types":
			types, err := decodeJSONTypes(dec)
			if err != nil {
				return s, err
			}
			s.Types = types
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return s, fmt.Errorf("parse rules: %w", err)
			}
		}
	}
	return s, nil
}

func decodeJSONTypes(dec *json.Decoder) ([]TypeRule, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parse rules: data_types: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("parse rules: data_types must be an object")
	}

	var out []TypeRule
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parse rules: data_types: %w", err)
		}
		key, _ := keyTok.(string)
		var tag string
		if err := dec.Decode(&tag); err != nil {
			return nil, fmt.Errorf("parse rules: data_types[%s] must be a string: %w", key, err)
		}
		out = append(out, TypeRule{Column: key, Tag: TypeTag(tag)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parse rules: data_types: %w", err)
	}
	return out, nil
}

// ParseYAML parses a rule set from a YAML mapping, walking nodes so
// data_types keeps its document order.
func ParseYAML(data []byte) (Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Set{}, fmt.Errorf("parse rules: %w", err)
	}

	var s Set
	if len(doc.Content) == 0 {
		return s, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return s, fmt.Errorf("parse rules: top level must be a mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		val := root.Content[i+1]
		switch key {
		case "required_columns":
			if err := val.Decode(&s.RequiredColumns); err != nil {
				return s, fmt.Errorf("parse rules: required_columns must be a list of strings: %w", err)
			}
		case "data_types":
			if val.Kind != yaml.MappingNode {
				return s, fmt.Errorf("parse rules: data_types must be a mapping")
			}
			for j := 0; j+1 < len(val.Content); j += 2 {
				var tag string
				if err := val.Content[j+1].Decode(&tag); err != nil {
					return s, fmt.Errorf("parse rules: data_types[%s] must be a string: %w", val.Content[j].Value, err)
				}
				s.Types = append(s.Types, TypeRule{Column: val.Content[j].Value, Tag: TypeTag(tag)})
			}
		}
	}
	return s, nil
}

// StarterYAML is the template rule set written by the init command.
const StarterYAML = `# datalint rule set.
#
# required_columns lists columns that must exist in the data.
# data_types maps column names to expected types: int, float, str, bool.

required_columns:
  - id

data_types:
  id: int
`
