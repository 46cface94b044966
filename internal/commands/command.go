// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"io"

	"todolist/internal/config"
	"todolist/internal/prompt"
	"todolist/internal/service"
)

// Command defines the interface for menu commands.
type Command interface {
	// Name returns the primary menu key. Numeric names appear in the menu.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns the menu label.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Run executes the command.
	// cfg and svc are always provided.
	// in is used to ask follow-up questions (task ID, description, filter).
	// Returns an exit code describing the outcome.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out, errOut io.Writer) int
}

// Terminator is implemented by commands that end the session.
type Terminator interface {
	Terminates() bool
}
