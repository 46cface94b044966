package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/output"
	"todolist/internal/prompt"
	"todolist/internal/service"
	"todolist/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "4" }
func (c *ListCmd) Aliases() []string { return []string{"list", "view", "ls"} }
func (c *ListCmd) Synopsis() string  { return "View Tasks" }
func (c *ListCmd) Usage() string     { return "4 | list | view | ls" }

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out, errOut io.Writer) int {
	answer, err := in.Ask(ctx, "Choose filter option ('Show all', 'Show completed', 'Show pending'): ")
	if err != nil {
		return exitcode.UserError
	}

	filter := cfg.DefaultFilter
	if strings.TrimSpace(answer) != "" {
		filter = store.ParseFilter(answer)
	}

	tasks := svc.ListTasks(filter)

	if cfg.Format == config.FormatYAML {
		if err := output.WriteYAML(out, tasks); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.BackendError
		}
		return exitcode.Success
	}

	output.WriteText(out, tasks)
	return exitcode.Success
}
