// Package task defines the immutable Task value and the factory that creates it.
package task

// Task represents a single to-do item.
// Values are immutable: only this package can construct a non-zero Task,
// and "editing" a task produces a new value with the same ID.
type Task struct {
	id          int
	description string
	completed   bool
	dueDate     string // empty means unset
}

// ID returns the task identifier.
func (t Task) ID() int { return t.id }

// Description returns the task description.
func (t Task) Description() string { return t.description }

// Completed reports whether the task has been marked completed.
func (t Task) Completed() bool { return t.completed }

// DueDate returns the due date text, or "" if none was given.
func (t Task) DueDate() string { return t.dueDate }

// HasDueDate reports whether a due date was set.
func (t Task) HasDueDate() bool { return t.dueDate != "" }

// MarkCompleted returns a copy of t with completed set.
// ID, description and due date are preserved.
func (t Task) MarkCompleted() Task {
	t.completed = true
	return t
}
