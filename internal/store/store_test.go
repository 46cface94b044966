package store

import (
	"errors"
	"testing"

	"todolist/internal/task"
)

// view is a comparable projection of a task for assertions.
type view struct {
	ID          int
	Description string
	Completed   bool
	DueDate     string
}

func views(tasks []task.Task) []view {
	out := make([]view, len(tasks))
	for i, t := range tasks {
		out[i] = view{t.ID(), t.Description(), t.Completed(), t.DueDate()}
	}
	return out
}

func assertViews(t *testing.T, got []task.Task, want []view) {
	t.Helper()
	g := views(got)
	if len(g) != len(want) {
		t.Fatalf("expected %d tasks, got %d: %+v", len(want), len(g), g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Errorf("task %d: expected %+v, got %+v", i, want[i], g[i])
		}
	}
}

func newFixture(t *testing.T, descriptions ...string) (*Store, *task.Factory) {
	t.Helper()
	s := New()
	f := task.NewFactory(task.NewCounter())
	for _, d := range descriptions {
		s.AddTask(f.Create(d, task.Options{}))
	}
	return s, f
}

func TestAddTask_IDsIncreaseAcrossDeletes(t *testing.T) {
	s, f := newFixture(t, "a", "b")
	if err := s.DeleteTask(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.AddTask(f.Create("c", task.Options{}))

	all := s.ListTasks(All)
	last := 0
	for _, tk := range all {
		if tk.ID() <= last {
			t.Errorf("IDs not strictly increasing: %d after %d", tk.ID(), last)
		}
		last = tk.ID()
	}
	if last != 3 {
		t.Errorf("expected deleted ID to stay retired, last ID %d", last)
	}
}

func TestMarkCompleted_Filters(t *testing.T) {
	s, _ := newFixture(t, "Buy milk", "Pay bills")

	if err := s.MarkCompleted(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertViews(t, s.ListTasks(CompletedOnly), []view{{1, "Buy milk", true, ""}})
	assertViews(t, s.ListTasks(PendingOnly), []view{{2, "Pay bills", false, ""}})
}

func TestMarkCompleted_PreservesDueDate(t *testing.T) {
	s := New()
	f := task.NewFactory(nil)
	s.AddTask(f.Create("Pay bills", task.Options{DueDate: "Friday"}))

	if err := s.MarkCompleted(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := s.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DueDate() != "Friday" || !got.Completed() {
		t.Errorf("expected completed task due Friday, got %+v", views([]task.Task{got}))
	}
}

func TestMarkCompleted_NotFound(t *testing.T) {
	s, _ := newFixture(t, "Buy milk")
	depth := s.UndoDepth()

	err := s.MarkCompleted(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.UndoDepth() != depth {
		t.Errorf("failed mutation must not push history: depth %d -> %d", depth, s.UndoDepth())
	}
	assertViews(t, s.ListTasks(All), []view{{1, "Buy milk", false, ""}})
}

func TestDeleteTask_PreservesOrder(t *testing.T) {
	s, _ := newFixture(t, "a", "b", "c", "d")

	if err := s.DeleteTask(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertViews(t, s.ListTasks(All), []view{
		{1, "a", false, ""},
		{3, "c", false, ""},
		{4, "d", false, ""},
	})

	if err := s.DeleteTask(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestDeleteTask_NotFoundKeepsHistory(t *testing.T) {
	s, _ := newFixture(t, "only")

	if err := s.DeleteTask(2); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	assertViews(t, s.ListTasks(All), []view{{1, "only", false, ""}})

	if !s.Undo() {
		t.Fatal("expected undo to apply")
	}
	if s.Len() != 0 {
		t.Errorf("expected pre-add empty state, got %d tasks", s.Len())
	}
	if s.Undo() {
		t.Error("expected no further undo")
	}
}

func TestListTasks_ReturnsCopy(t *testing.T) {
	s, f := newFixture(t, "a", "b")

	got := s.ListTasks(All)
	got[0] = f.Create("intruder", task.Options{})

	assertViews(t, s.ListTasks(All), []view{
		{1, "a", false, ""},
		{2, "b", false, ""},
	})
	if s.UndoDepth() != 2 {
		t.Errorf("listing must not affect history, depth %d", s.UndoDepth())
	}
}

func TestListTasks_UnknownFilterIsAll(t *testing.T) {
	s, _ := newFixture(t, "a", "b")
	if err := s.MarkCompleted(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertViews(t, s.ListTasks(Filter(99)), []view{
		{1, "a", false, ""},
		{2, "b", true, ""},
	})
}

func TestUndoRedo_SingleMutation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Store, *task.Factory) error
		after  []view
	}{
		{
			name:   "mark completed",
			mutate: func(s *Store, _ *task.Factory) error { return s.MarkCompleted(1) },
			after:  []view{{1, "a", true, ""}, {2, "b", false, ""}},
		},
		{
			name:   "delete",
			mutate: func(s *Store, _ *task.Factory) error { return s.DeleteTask(1) },
			after:  []view{{2, "b", false, ""}},
		},
		{
			name: "add",
			mutate: func(s *Store, f *task.Factory) error {
				s.AddTask(f.Create("c", task.Options{}))
				return nil
			},
			after: []view{{1, "a", false, ""}, {2, "b", false, ""}, {3, "c", false, ""}},
		},
	}

	before := []view{{1, "a", false, ""}, {2, "b", false, ""}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := newFixture(t, "a", "b")
			if err := tt.mutate(s, f); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertViews(t, s.ListTasks(All), tt.after)

			if !s.Undo() {
				t.Fatal("expected undo to apply")
			}
			assertViews(t, s.ListTasks(All), before)

			if !s.Redo() {
				t.Fatal("expected redo to apply")
			}
			assertViews(t, s.ListTasks(All), tt.after)
		})
	}
}

func TestMutationAfterUndo_ClearsRedo(t *testing.T) {
	s, f := newFixture(t, "a", "b")

	s.Undo()
	if s.RedoDepth() != 1 {
		t.Fatalf("expected redo depth 1, got %d", s.RedoDepth())
	}

	s.AddTask(f.Create("c", task.Options{}))
	if s.Redo() {
		t.Error("expected redo to be a no-op after a new mutation")
	}
	if s.RedoDepth() != 0 {
		t.Errorf("expected empty redo stack, got %d", s.RedoDepth())
	}
}

func TestUndo_FreshStore(t *testing.T) {
	s := New()

	if s.Undo() {
		t.Error("expected undo on fresh store to be a no-op")
	}
	if s.Redo() {
		t.Error("expected redo on fresh store to be a no-op")
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d tasks", s.Len())
	}
}

func TestUndo_RestoredStateIsIsolated(t *testing.T) {
	s, _ := newFixture(t, "a", "b")
	if err := s.MarkCompleted(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Undo()

	// The restored slice is private; mutating it leaves the undo snapshot intact.
	if err := s.DeleteTask(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Undo()
	assertViews(t, s.ListTasks(All), []view{{1, "a", false, ""}, {2, "b", false, ""}})
}

func TestScenario_BuyMilkPayBills(t *testing.T) {
	s, _ := newFixture(t, "Buy milk", "Pay bills")

	if err := s.MarkCompleted(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertViews(t, s.ListTasks(All), []view{
		{1, "Buy milk", true, ""},
		{2, "Pay bills", false, ""},
	})

	s.Undo()
	assertViews(t, s.ListTasks(All), []view{
		{1, "Buy milk", false, ""},
		{2, "Pay bills", false, ""},
	})

	s.Redo()
	assertViews(t, s.ListTasks(All), []view{
		{1, "Buy milk", true, ""},
		{2, "Pay bills", false, ""},
	})
}

func TestUndoRedo_WalkFullHistory(t *testing.T) {
	s, _ := newFixture(t, "a", "b", "c")

	for s.Undo() {
	}
	if s.Len() != 0 {
		t.Fatalf("expected empty list after undoing everything, got %d", s.Len())
	}
	if s.RedoDepth() != 3 {
		t.Fatalf("expected redo depth 3, got %d", s.RedoDepth())
	}

	for s.Redo() {
	}
	assertViews(t, s.ListTasks(All), []view{
		{1, "a", false, ""},
		{2, "b", false, ""},
		{3, "c", false, ""},
	})
}

func TestGet_NotFound(t *testing.T) {
	s := New()
	if _, err := s.Get(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDuplicateIDs_FirstMatchWins(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Store) error
		want   []view
	}{
		{
			name:   "mark completed",
			mutate: func(s *Store) error { return s.MarkCompleted(1) },
			want:   []view{{1, "first", true, ""}, {1, "second", false, ""}},
		},
		{
			name:   "delete",
			mutate: func(s *Store) error { return s.DeleteTask(1) },
			want:   []view{{1, "second", false, ""}},
		},
		{
			name: "mark completed then delete",
			mutate: func(s *Store) error {
				if err := s.MarkCompleted(1); err != nil {
					return err
				}
				return s.DeleteTask(1)
			},
			want: []view{{1, "second", false, ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Separate counters both hand out ID 1.
			s := New()
			s.AddTask(task.NewFactory(task.NewCounter()).Create("first", task.Options{}))
			s.AddTask(task.NewFactory(task.NewCounter()).Create("second", task.Options{}))

			if err := tt.mutate(s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertViews(t, s.ListTasks(All), tt.want)

			got, err := s.Get(1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Description() != tt.want[0].Description {
				t.Errorf("Get should return the first match %q, got %q", tt.want[0].Description, got.Description())
			}
		})
	}
}
