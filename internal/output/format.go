// Package output provides formatters for menu output.
package output

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"todolist/internal/task"
)

const (
	// ListHeader introduces the task view.
	ListHeader = "Task List:"
)

// FormatTask writes one task line.
// Format: "ID: {ID}, {DESCRIPTION} - {Completed|Pending}[, Due: {DUE}]\n"
func FormatTask(w io.Writer, t task.Task) {
	status := "Pending"
	if t.Completed() {
		status = "Completed"
	}
	fmt.Fprintf(w, "ID: %d, %s - %s", t.ID(), normalizeDescription(t.Description()), status)
	if t.HasDueDate() {
		fmt.Fprintf(w, ", Due: %s", t.DueDate())
	}
	fmt.Fprintln(w)
}

// WriteText writes the header followed by one line per task.
func WriteText(w io.Writer, tasks []task.Task) {
	fmt.Fprintln(w, ListHeader)
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// yamlTask is the YAML shape of a task.
type yamlTask struct {
	ID          int    `yaml:"id"`
	Description string `yaml:"description"`
	Completed   bool   `yaml:"completed"`
	DueDate     string `yaml:"due_date,omitempty"`
}

// WriteYAML writes tasks as a YAML sequence. An empty view is written as "[]".
func WriteYAML(w io.Writer, tasks []task.Task) error {
	doc := make([]yamlTask, len(tasks))
	for i, t := range tasks {
		doc[i] = yamlTask{
			ID:          t.ID(),
			Description: t.Description(),
			Completed:   t.Completed(),
			DueDate:     t.DueDate(),
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return enc.Close()
}

// normalizeDescription normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")

	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}
