package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxScrollback bounds the number of lines kept in the shell history.
const maxScrollback = 500

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

var helpLines = []string{
	"Commands:",
	"  /validate --file <path> --rules <path> [--output <path>]    Validate a data file",
	"  /status                                                     Show recent validation runs",
	"  /clear                                                      Delete recorded run history",
	"  /help [command]                                             Show this help, or help for one command",
	"  exit, quit                                                  Leave the shell",
	"",
	"Use /help <command> for detailed help on a command.",
}

var commandHelp = map[string][]string{
	"validate": {
		"/validate - Validate a data file",
		"",
		"Usage: /validate --file <path> --rules <path or inline JSON> [--output <path>]",
		"",
		"Arguments:",
		"  --file     Path to an Excel (.xlsx) or CSV (.csv) file",
		"  --rules    Rules file (.json/.yaml/.yml) or an inline JSON object",
		"  --output   Report path (defaults to <stem>_validated.xlsx)",
		"",
		"Rules format:",
		`  {"required_columns": ["id"], "data_types": {"id": "int", "name": "str"}}`,
		"",
		"Single-quote inline JSON so it parses as one argument:",
		`  /validate --file data.csv --rules '{"data_types": {"id": "int"}}'`,
	},
	"status": {
		"/status - Show recent validation runs",
		"",
		"Lists recorded runs newest first with their finding counts.",
	},
	"clear": {
		"/clear - Delete recorded run history",
		"",
		"Removes every run from the history database.",
	},
	"help": {
		"/help [command] - Show help",
		"",
		"Without an argument, lists all commands.",
	},
}

// helpFor picks the help text for /help: per-command when a name is
// given (positionally or via --command), general otherwise.
func helpFor(cmd *Command) []string {
	name := cmd.Arg("command", "")
	if name == "" && len(cmd.Positional) > 0 {
		name = cmd.Positional[0]
	}
	name = strings.TrimPrefix(strings.ToLower(name), "/")

	if lines, ok := commandHelp[name]; ok {
		return lines
	}
	return helpLines
}

// Shell is the main model for interactive mode. It keeps a scrollback of
// command output above a single input field.
type Shell struct {
	input    *InputField
	lines    []string
	width    int
	height   int
	quitting bool

	// Callback for commands the shell does not handle itself.
	onCommand func(cmd *Command) []string
}

// NewShell creates a new Shell.
func NewShell() *Shell {
	return &Shell{
		input: NewInputField(),
		lines: []string{
			"datalint interactive shell. Type /help for commands.",
			"",
		},
	}
}

// SetCommandHandler sets the callback that executes commands.
func (s *Shell) SetCommandHandler(handler func(cmd *Command) []string) {
	s.onCommand = handler
}

// Init implements tea.Model.
func (s *Shell) Init() tea.Cmd {
	return s.input.Focus()
}

// Update implements tea.Model.
func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.quitting = true
			return s, tea.Quit

		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.input.SetWidth(msg.Width)
		return s, nil

	case CommandSubmittedMsg:
		return s.handleLine(msg.Line)
	}

	return s, nil
}

// handleLine echoes and executes one submitted line.
func (s *Shell) handleLine(line string) (tea.Model, tea.Cmd) {
	s.append("> " + line)

	cmd, err := ParseCommand(line)
	if err != nil {
		s.append(errorStyle.Render("Error: "+err.Error()), "")
		return s, nil
	}

	switch cmd.Name {
	case "exit":
		s.quitting = true
		return s, tea.Quit

	case "help":
		s.append(helpFor(cmd)...)
		s.append("")
		return s, nil

	default:
		if s.onCommand == nil {
			s.append(errorStyle.Render("Unknown command: /"+cmd.Name+" (try /help)"), "")
			return s, nil
		}
		out := s.onCommand(cmd)
		if out == nil {
			s.append(errorStyle.Render("Unknown command: /"+cmd.Name+" (try /help)"), "")
			return s, nil
		}
		for i, l := range out {
			if strings.HasPrefix(l, "Error:") {
				out[i] = errorStyle.Render(l)
			}
		}
		s.append(out...)
		s.append("")
		return s, nil
	}
}

// append adds lines to the scrollback, trimming old history.
func (s *Shell) append(lines ...string) {
	s.lines = append(s.lines, lines...)
	if len(s.lines) > maxScrollback {
		s.lines = s.lines[len(s.lines)-maxScrollback:]
	}
}

// View implements tea.Model.
func (s *Shell) View() string {
	if s.quitting {
		return "Goodbye!\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	title := titleStyle.Render("datalint")

	// Reserve room for the title and input box.
	visible := s.lines
	if s.height > 0 {
		maxLines := s.height - 5
		if maxLines < 1 {
			maxLines = 1
		}
		if len(visible) > maxLines {
			visible = visible[len(visible)-maxLines:]
		}
	}

	scrollback := strings.Join(visible, "\n")
	input := s.input.View()

	return lipgloss.JoinVertical(lipgloss.Left, title, scrollback, input)
}

// NewShellProgram creates a new Bubbletea program for interactive mode.
func NewShellProgram() (*tea.Program, *Shell) {
	shell := NewShell()
	p := tea.NewProgram(shell, tea.WithAltScreen())
	return p, shell
}
