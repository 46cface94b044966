package commands

import (
	"context"
	"fmt"
	"io"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/prompt"
	"todolist/internal/service"
)

func init() {
	Register(&QuitCmd{})
}

// QuitCmd ends the session.
type QuitCmd struct{}

func (c *QuitCmd) Name() string      { return "7" }
func (c *QuitCmd) Aliases() []string { return []string{"quit", "exit", "q"} }
func (c *QuitCmd) Synopsis() string  { return "Quit" }
func (c *QuitCmd) Usage() string     { return "7 | quit | exit | q" }
func (c *QuitCmd) Terminates() bool  { return true }

func (c *QuitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out, errOut io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "Exiting ToDo List Manager. Goodbye!")
	}
	return exitcode.Success
}
