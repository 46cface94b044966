// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"slices"
	"sync"

	"todolist/internal/store"
	"todolist/internal/task"
)

// FakeService is a scriptable implementation of service.Service for testing.
// It keeps a plain task list and records history calls without snapshots.
type FakeService struct {
	mu      sync.RWMutex
	factory *task.Factory
	tasks   []task.Task

	// UndoResult and RedoResult are returned by Undo and Redo.
	UndoResult bool
	RedoResult bool

	// Calls counts Undo and Redo invocations by name.
	Calls map[string]int

	// Error injection for testing
	CompleteTaskErr error
	DeleteTaskErr   error
}

// NewFakeService creates an empty FakeService with its own ID counter.
func NewFakeService() *FakeService {
	return &FakeService{
		factory: task.NewFactory(task.NewCounter()),
		Calls:   make(map[string]int),
	}
}

// Seed adds tasks without going through AddTask. Returns the created tasks.
func (f *FakeService) Seed(descriptions ...string) []task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	var added []task.Task
	for _, d := range descriptions {
		t := f.factory.Create(d, task.Options{})
		f.tasks = append(f.tasks, t)
		added = append(added, t)
	}
	return added
}

// Tasks returns a copy of the current list.
func (f *FakeService) Tasks() []task.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.tasks)
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(description, dueDate string) task.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.factory.Create(description, task.Options{DueDate: dueDate})
	f.tasks = append(f.tasks, t)
	return t
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(id int) error {
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID() == id {
			f.tasks[i] = t.MarkCompleted()
			return nil
		}
	}
	return fmt.Errorf("%w: %d", store.ErrNotFound, id)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(id int) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID() == id {
			f.tasks = slices.Delete(f.tasks, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", store.ErrNotFound, id)
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(filter store.Filter) []task.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var result []task.Task
	for _, t := range f.tasks {
		if filter == store.CompletedOnly && !t.Completed() {
			continue
		}
		if filter == store.PendingOnly && t.Completed() {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Undo implements service.Service.
func (f *FakeService) Undo() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls["undo"]++
	return f.UndoResult
}

// Redo implements service.Service.
func (f *FakeService) Redo() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls["redo"]++
	return f.RedoResult
}
