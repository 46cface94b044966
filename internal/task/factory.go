package task

import "sync/atomic"

// Counter is a monotonic task ID source. IDs start at 1 and are never reused.
// The zero value is ready to use.
type Counter struct {
	last atomic.Int64
}

// NewCounter creates a counter whose first ID is 1.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the next ID.
func (c *Counter) Next() int {
	return int(c.last.Add(1))
}

// defaultCounter is shared by every DefaultFactory call.
// It is reset only at process start.
var defaultCounter Counter

// Options holds the optional fields of a new task.
type Options struct {
	// DueDate is free-form text; empty means unset.
	DueDate string

	// Completed creates the task already completed.
	Completed bool
}

// Factory creates tasks with sequential IDs.
type Factory struct {
	ids *Counter
}

// NewFactory creates a factory drawing IDs from c.
// A nil counter gets a fresh one.
func NewFactory(c *Counter) *Factory {
	if c == nil {
		c = NewCounter()
	}
	return &Factory{ids: c}
}

// DefaultFactory returns a factory backed by the process-wide counter.
func DefaultFactory() *Factory {
	return &Factory{ids: &defaultCounter}
}

// Create builds a new task with the next ID.
// Inputs are accepted as given, including an empty description.
func (f *Factory) Create(description string, opts Options) Task {
	return Task{
		id:          f.ids.Next(),
		description: description,
		completed:   opts.Completed,
		dueDate:     opts.DueDate,
	}
}
