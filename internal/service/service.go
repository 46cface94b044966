// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"todolist/internal/store"
	"todolist/internal/task"
)

// Service defines the task operations available to the menu.
// Menu commands never touch the store or the factory directly.
type Service interface {
	// AddTask creates a task with the next ID and appends it to the list.
	AddTask(description, dueDate string) task.Task

	// CompleteTask marks a task completed.
	// Returns an error wrapping store.ErrNotFound if the ID is unknown.
	CompleteTask(id int) error

	// DeleteTask removes a task.
	// Returns an error wrapping store.ErrNotFound if the ID is unknown.
	DeleteTask(id int) error

	// ListTasks returns the tasks selected by f, in list order.
	ListTasks(f store.Filter) []task.Task

	// Undo reverts the last mutation. Returns false if there was nothing to undo.
	Undo() bool

	// Redo reapplies the last undone mutation. Returns false if there was nothing to redo.
	Redo() bool
}
