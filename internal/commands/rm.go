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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "3" }
func (c *RmCmd) Aliases() []string { return []string{"rm", "delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete Task" }
func (c *RmCmd) Usage() string     { return "3 | rm | delete" }

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out, errOut io.Writer) int {
	id, code, ok := askTaskID(ctx, in, errOut, "Enter task ID to delete: ")
	if !ok {
		return code
	}

	if err := svc.DeleteTask(id); err != nil {
		return reportTaskError(errOut, id, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "Task deleted successfully!")
	}
	return exitcode.Success
}
