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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "2" }
func (c *DoneCmd) Aliases() []string { return []string{"done", "complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark Task as Completed" }
func (c *DoneCmd) Usage() string     { return "2 | done | complete" }

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out, errOut io.Writer) int {
	id, code, ok := askTaskID(ctx, in, errOut, "Enter task ID to mark as completed: ")
	if !ok {
		return code
	}

	if err := svc.CompleteTask(id); err != nil {
		return reportTaskError(errOut, id, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "Task marked as completed!")
	}
	return exitcode.Success
}
