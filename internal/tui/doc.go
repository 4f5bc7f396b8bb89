// Package tui provides the interactive shell for datalint.
//
// The shell is a Bubbletea program with a single input field and a
// scrollback of command output. Input lines are parsed as slash commands
// (/validate, /status, /clear, /help) plus the bare words exit and quit.
// The shell executes /help and exit itself; everything else is passed
// to a handler installed by the caller, which returns the output lines
// to print.
//
// Usage:
//
//	program, shell := tui.NewShellProgram()
//	shell.SetCommandHandler(func(cmd *tui.Command) []string {
//	    // run the command, return output lines
//	})
//	program.Run()
package tui
