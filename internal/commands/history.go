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
	Register(&UndoCmd{})
	Register(&RedoCmd{})
}

// UndoCmd implements the undo command.
type UndoCmd struct{}

func (c *UndoCmd) Name() string      { return "5" }
func (c *UndoCmd) Aliases() []string { return []string{"undo", "u"} }
func (c *UndoCmd) Synopsis() string  { return "Undo" }
func (c *UndoCmd) Usage() string     { return "5 | undo | u" }

// Run reports an empty history as a no-op; it is not an error.
func (c *UndoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out, errOut io.Writer) int {
	reportHistory(cfg, out, svc.Undo(), "Undo performed.", "Nothing to undo.")
	return exitcode.Success
}

// RedoCmd implements the redo command.
type RedoCmd struct{}

func (c *RedoCmd) Name() string      { return "6" }
func (c *RedoCmd) Aliases() []string { return []string{"redo", "r"} }
func (c *RedoCmd) Synopsis() string  { return "Redo" }
func (c *RedoCmd) Usage() string     { return "6 | redo | r" }

func (c *RedoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *prompt.Prompter, out, errOut io.Writer) int {
	reportHistory(cfg, out, svc.Redo(), "Redo performed.", "Nothing to redo.")
	return exitcode.Success
}

// reportHistory prints the outcome of a history move.
// Quiet mode hides the confirmation but never the no-op notice.
func reportHistory(cfg *config.Config, out io.Writer, applied bool, performed, nothing string) {
	switch {
	case !applied:
		fmt.Fprintln(out, nothing)
	case !cfg.Quiet:
		fmt.Fprintln(out, performed)
	}
}
