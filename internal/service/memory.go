package service

import (
	"log/slog"

	"github.com/google/uuid"

	"todolist/internal/logging"
	"todolist/internal/store"
	"todolist/internal/task"
)

// Memory implements Service over an in-process store.
// Each Memory is one session; it is not safe for concurrent use.
type Memory struct {
	id      string
	factory *task.Factory
	store   *store.Store
	log     *slog.Logger
}

// NewMemory creates an empty session.
// A nil factory uses task.DefaultFactory; a nil logger discards records.
func NewMemory(factory *task.Factory, log *slog.Logger) *Memory {
	if factory == nil {
		factory = task.DefaultFactory()
	}
	if log == nil {
		log = logging.Discard()
	}
	id := uuid.NewString()
	return &Memory{
		id:      id,
		factory: factory,
		store:   store.New(),
		log:     log.With("session", id),
	}
}

// SessionID returns the unique identifier of this session.
func (m *Memory) SessionID() string {
	return m.id
}

// AddTask implements Service.
func (m *Memory) AddTask(description, dueDate string) task.Task {
	t := m.factory.Create(description, task.Options{DueDate: dueDate})
	m.store.AddTask(t)
	m.log.Debug("task added", "id", t.ID(), "undo_depth", m.store.UndoDepth())
	return t
}

// CompleteTask implements Service.
func (m *Memory) CompleteTask(id int) error {
	if err := m.store.MarkCompleted(id); err != nil {
		m.log.Debug("complete failed", "id", id, "err", err)
		return err
	}
	m.log.Debug("task completed", "id", id, "undo_depth", m.store.UndoDepth())
	return nil
}

// DeleteTask implements Service.
func (m *Memory) DeleteTask(id int) error {
	if err := m.store.DeleteTask(id); err != nil {
		m.log.Debug("delete failed", "id", id, "err", err)
		return err
	}
	m.log.Debug("task deleted", "id", id, "undo_depth", m.store.UndoDepth())
	return nil
}

// ListTasks implements Service.
func (m *Memory) ListTasks(f store.Filter) []task.Task {
	return m.store.ListTasks(f)
}

// Undo implements Service.
func (m *Memory) Undo() bool {
	ok := m.store.Undo()
	m.log.Debug("undo", "applied", ok, "undo_depth", m.store.UndoDepth(), "redo_depth", m.store.RedoDepth())
	return ok
}

// Redo implements Service.
func (m *Memory) Redo() bool {
	ok := m.store.Redo()
	m.log.Debug("redo", "applied", ok, "undo_depth", m.store.UndoDepth(), "redo_depth", m.store.RedoDepth())
	return ok
}
