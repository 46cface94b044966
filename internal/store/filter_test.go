package store

import "testing"

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"Show all", All},
		{"Show completed", CompletedOnly},
		{"Show pending", PendingOnly},
		{"  SHOW COMPLETED  ", CompletedOnly},
		{"pending", PendingOnly},
		{"completed", CompletedOnly},
		{"3", PendingOnly},
		{"", All},
		{"whatever", All},
	}

	for _, tt := range tests {
		if got := ParseFilter(tt.in); got != tt.want {
			t.Errorf("ParseFilter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFilterString(t *testing.T) {
	if CompletedOnly.String() != "completed" {
		t.Errorf("unexpected %q", CompletedOnly.String())
	}
	if Filter(42).String() != "all" {
		t.Errorf("unknown filters should render as all, got %q", Filter(42).String())
	}
}
