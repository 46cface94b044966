package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todolist/internal/exitcode"
	"todolist/internal/prompt"
	"todolist/internal/store"
)

// ErrTaskIDRequired indicates an empty task ID answer.
var ErrTaskIDRequired = errors.New("task ID required")

// ParseTaskID parses a task ID answer.
// Surrounding whitespace is ignored; anything but ASCII digits is rejected.
func ParseTaskID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrTaskIDRequired
	}
	if !isAllDigits(s) {
		return 0, fmt.Errorf("invalid task id: %s", s)
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", s)
	}
	return id, nil
}

// askTaskID prompts for a task ID.
// On failure it reports to errOut and returns ok == false with the exit code.
func askTaskID(ctx context.Context, in *prompt.Prompter, errOut io.Writer, label string) (id int, code int, ok bool) {
	answer, err := in.Ask(ctx, label)
	if err != nil {
		return 0, exitcode.UserError, false
	}

	id, err = ParseTaskID(answer)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 0, exitcode.UserError, false
	}
	return id, exitcode.Success, true
}

// reportTaskError writes a service error and returns its exit code.
func reportTaskError(errOut io.Writer, id int, err error) int {
	if errors.Is(err, store.ErrNotFound) {
		fmt.Fprintf(errOut, "error: task not found: %d\n", id)
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.BackendError
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
