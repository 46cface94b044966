package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/prompt"
	"todolist/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "1" }
func (c *AddCmd) Aliases() []string { return []string{"add", "create"} }
func (c *AddCmd) Synopsis() string  { return "Add Task" }
func (c *AddCmd) Usage() string     { return "1 | add | create" }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out, errOut io.Writer) int {
	description, err := in.Ask(ctx, "Enter task description: ")
	if err != nil {
		return exitcode.UserError
	}

	dueDate, err := in.Ask(ctx, "Enter due date (optional): ")
	if err != nil {
		return exitcode.UserError
	}

	// Text is accepted as given; the due date is trimmed so a blank answer stays unset.
	t := svc.AddTask(description, strings.TrimSpace(dueDate))

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task added successfully! (ID: %d)\n", t.ID())
	}
	return exitcode.Success
}
