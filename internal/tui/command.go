package tui

import (
	"fmt"
	"strings"
	"unicode"
)

// Command is one parsed shell command. Name carries the command without
// its leading slash; exit and quit both parse to the name "exit".
type Command struct {
	Name       string
	Args       map[string]string
	Positional []string
}

// Arg returns the named flag value, or the fallback when the flag was
// not given.
func (c *Command) Arg(name, fallback string) string {
	if v, ok := c.Args[name]; ok {
		return v
	}
	return fallback
}

// ParseCommand parses one line of shell input. Commands start with a
// slash and take --flag value pairs; values with spaces can be quoted.
// The bare words exit and quit are accepted without a slash.
func ParseCommand(line string) (*Command, error) {
	tokens, err := splitTokens(strings.TrimSpace(line))
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	head := tokens[0]
	if lower := strings.ToLower(head); lower == "exit" || lower == "quit" {
		return &Command{Name: "exit", Args: map[string]string{}}, nil
	}
	if !strings.HasPrefix(head, "/") {
		return nil, fmt.Errorf("commands must start with '/', try /help")
	}

	cmd := &Command{
		Name: strings.ToLower(strings.TrimPrefix(head, "/")),
		Args: make(map[string]string),
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("empty command")
	}

	rest := tokens[1:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		if !strings.HasPrefix(tok, "--") {
			cmd.Positional = append(cmd.Positional, tok)
			continue
		}
		name := strings.TrimPrefix(tok, "--")
		if name == "" {
			return nil, fmt.Errorf("empty flag name")
		}
		if i+1 >= len(rest) || strings.HasPrefix(rest[i+1], "--") {
			return nil, fmt.Errorf("flag --%s requires a value", name)
		}
		cmd.Args[name] = rest[i+1]
		i++
	}

	return cmd, nil
}

// splitTokens splits a command line on whitespace, keeping quoted segments
// together. Both quote styles work and may nest each other, so inline JSON
// survives as one token when wrapped in single quotes:
// --rules '{"id": "int"}'.
func splitTokens(line string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	var quote rune
	quoted := false

	flush := func() {
		// A quoted segment may be empty.
		if cur.Len() > 0 || quoted {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
		quoted = false
	}

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			quoted = true
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote")
	}
	flush()

	return tokens, nil
}
