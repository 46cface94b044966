// Package cli runs the interactive menu session.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"todolist/internal/commands"
	"todolist/internal/config"
	"todolist/internal/exitcode"
	"todolist/internal/logging"
	"todolist/internal/prompt"
	"todolist/internal/service"
	"todolist/internal/store"
)

// ServiceFactory creates the session's Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, log *slog.Logger) (service.Service, error)

// Dispatcher handles flag parsing and the menu loop.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
// A nil factory creates an in-memory session.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	if factory == nil {
		factory = MemoryFactory
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// MemoryFactory creates an in-memory session drawing IDs from the process-wide counter.
func MemoryFactory(ctx context.Context, cfg *config.Config, log *slog.Logger) (service.Service, error) {
	return service.NewMemory(nil, log), nil
}

// options holds parsed process flags.
type options struct {
	configDir string
	quiet     bool
	debug     bool
	filter    string
	format    string
}

// Run parses arguments, then reads menu choices from in until the user quits,
// input ends, or ctx is cancelled.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	opts, code, ok := parseFlags(args, errOut)
	if !ok {
		return code
	}

	cfg, err := config.Load(opts.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	// Flags can only turn settings on; the file supplies the rest.
	cfg.Quiet = cfg.Quiet || opts.quiet
	cfg.Debug = cfg.Debug || opts.debug
	if opts.filter != "" {
		cfg.DefaultFilter = store.ParseFilter(opts.filter)
	}
	if opts.format != "" {
		if err := cfg.SetFormat(opts.format); err != nil {
			fmt.Fprintf(errOut, "error: %s\n", err)
			return exitcode.UserError
		}
	}

	log := logging.New(errOut, cfg.Debug)

	svc, err := d.factory(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %s\n", err)
		return exitcode.BackendError
	}

	log.Debug("session started", "config", cfg.Dir, "filter", cfg.DefaultFilter, "format", cfg.Format)
	p := prompt.New(in, out)
	defer p.Close()

	return d.loop(ctx, cfg, svc, log, p, out, errOut)
}

func (d *Dispatcher) loop(ctx context.Context, cfg *config.Config, svc service.Service, log *slog.Logger, in *prompt.Prompter, out, errOut io.Writer) int {
	for {
		commands.WriteMenu(out, d.registry)

		choice, err := in.Ask(ctx, commands.ChoicePrompt(d.registry))
		if err != nil {
			return endOfInput(err, log, out, errOut)
		}

		cmd, ok := d.registry.Find(choice)
		if !ok {
			fmt.Fprintln(out, commands.InvalidChoice(d.registry))
			continue
		}

		code := cmd.Run(ctx, cfg, svc, in, out, errOut)
		log.Debug("command finished", "command", cmd.Name(), "code", code)

		// A cancelled session ends here, not after another menu.
		if err := ctx.Err(); err != nil {
			return endOfInput(err, log, out, errOut)
		}

		if t, ok := cmd.(commands.Terminator); ok && t.Terminates() {
			return exitcode.Success
		}
	}
}

// endOfInput maps a failed menu read to an exit code.
// Exhausted input and cancellation end the session normally.
func endOfInput(err error, log *slog.Logger, out, errOut io.Writer) int {
	switch {
	case errors.Is(err, io.EOF):
		fmt.Fprintln(out)
		log.Debug("input closed")
		return exitcode.Success
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(out)
		log.Debug("session cancelled", "err", err)
		return exitcode.Success
	default:
		fmt.Fprintf(errOut, "error: reading input: %v\n", err)
		return exitcode.BackendError
	}
}

func parseFlags(args []string, errOut io.Writer) (options, int, bool) {
	var opts options

	// Create flag set with custom error handling
	fs := flag.NewFlagSet("todolist", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	fs.StringVar(&opts.configDir, "config", "", "")
	fs.BoolVar(&opts.quiet, "quiet", false, "")
	fs.BoolVar(&opts.debug, "debug", false, "")
	fs.StringVar(&opts.filter, "filter", "", "")
	fs.StringVar(&opts.format, "format", "", "")

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Check for missing flag value
		if strings.HasPrefix(errStr, "flag needs an argument:") {
			flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
			return opts, exitcode.UserError, false
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return opts, exitcode.UserError, false
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return opts, exitcode.UserError, false
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return opts, exitcode.UserError, false
	}

	return opts, exitcode.Success, true
}
