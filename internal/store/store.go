// Package store holds the live task list and its undo/redo history.
package store

import (
	"errors"
	"fmt"
	"slices"

	"todolist/internal/task"
)

// ErrNotFound is returned when an operation targets an ID absent from the list.
var ErrNotFound = errors.New("task not found")

// snapshot is an immutable copy of the whole ordered collection.
type snapshot struct {
	tasks []task.Task
}

func takeSnapshot(tasks []task.Task) snapshot {
	return snapshot{tasks: slices.Clone(tasks)}
}

// restore returns a private copy so later mutations cannot reach the snapshot.
func (s snapshot) restore() []task.Task {
	return slices.Clone(s.tasks)
}

// Store is an ordered, in-memory task list with linear undo/redo.
// Every successful mutation records the previous state on the undo stack
// and clears the redo stack. A Store is not safe for concurrent use;
// each session owns its own instance.
type Store struct {
	tasks []task.Task
	undo  []snapshot
	redo  []snapshot
}

// New creates an empty store with no history.
func New() *Store {
	return &Store{}
}

// AddTask appends t to the end of the list.
func (s *Store) AddTask(t task.Task) {
	s.record()
	s.tasks = append(s.tasks, t)
}

// MarkCompleted replaces the task with the given ID by a completed copy.
// Returns ErrNotFound without touching state or history if the ID is absent.
func (s *Store) MarkCompleted(id int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.record()
	s.tasks[i] = s.tasks[i].MarkCompleted()
	return nil
}

// DeleteTask removes the task with the given ID, keeping the order of the rest.
// Returns ErrNotFound without touching state or history if the ID is absent.
func (s *Store) DeleteTask(id int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.record()
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

// Get returns the task with the given ID.
func (s *Store) Get(id int) (task.Task, error) {
	i := s.index(id)
	if i < 0 {
		return task.Task{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return s.tasks[i], nil
}

// ListTasks returns the tasks selected by f in list order.
// The result is a fresh slice; modifying it does not affect the store.
func (s *Store) ListTasks(f Filter) []task.Task {
	result := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		switch f {
		case CompletedOnly:
			if !t.Completed() {
				continue
			}
		case PendingOnly:
			if t.Completed() {
				continue
			}
		}
		result = append(result, t)
	}
	return result
}

// Len returns the number of tasks in the list.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Undo restores the state before the most recent mutation.
// Returns false, leaving state unchanged, if there is nothing to undo.
func (s *Store) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	s.redo = append(s.redo, takeSnapshot(s.tasks))
	s.tasks = pop(&s.undo).restore()
	return true
}

// Redo reapplies the most recently undone state.
// Returns false, leaving state unchanged, if there is nothing to redo.
func (s *Store) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}
	s.undo = append(s.undo, takeSnapshot(s.tasks))
	s.tasks = pop(&s.redo).restore()
	return true
}

// UndoDepth returns the number of states available to Undo.
func (s *Store) UndoDepth() int {
	return len(s.undo)
}

// RedoDepth returns the number of states available to Redo.
func (s *Store) RedoDepth() int {
	return len(s.redo)
}

// record pushes the current state onto the undo stack and clears redo.
// Called before every mutation.
func (s *Store) record() {
	s.undo = append(s.undo, takeSnapshot(s.tasks))
	s.redo = nil
}

// index returns the position of the first task with the given ID, or -1.
func (s *Store) index(id int) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID() == id
	})
}

func pop(stack *[]snapshot) snapshot {
	n := len(*stack) - 1
	top := (*stack)[n]
	(*stack)[n] = snapshot{}
	*stack = (*stack)[:n]
	return top
}
