package store

import "strings"

// Filter selects which tasks ListTasks returns. It never affects stored state.
type Filter int

const (
	// All returns every task.
	All Filter = iota

	// CompletedOnly returns completed tasks.
	CompletedOnly

	// PendingOnly returns tasks not yet completed.
	PendingOnly
)

func (f Filter) String() string {
	switch f {
	case CompletedOnly:
		return "completed"
	case PendingOnly:
		return "pending"
	default:
		return "all"
	}
}

// ParseFilter maps menu text to a Filter.
// Matching is case-insensitive and ignores surrounding whitespace.
// Unrecognized text yields All.
func ParseFilter(s string) Filter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "show completed", "completed", "done", "2":
		return CompletedOnly
	case "show pending", "pending", "open", "3":
		return PendingOnly
	default:
		return All
	}
}
