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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return []string{"?", "h"} }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help | ? | h" }

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todolist [--config <dir>] [--quiet] [--debug] [--filter <name>] [--format text|yaml]

Menu choices:
  1 | add | create          Add a task (description, optional due date)
  2 | done | complete       Mark a task completed by ID
  3 | rm | delete           Delete a task by ID
  4 | list | view | ls      View tasks ('Show all', 'Show completed', 'Show pending')
  5 | undo | u              Undo the last change
  6 | redo | r              Redo the last undone change
  7 | quit | exit | q       Quit
  help | ? | h              Print usage
  version                   Print version

Flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --filter <name>  Filter used when the view prompt is left empty
  --format <name>  Task view format: text or yaml
`
