package styles

import (
	"strings"
	"testing"
)

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status   string
		expected string // Expected color hex value
	}{
		{"pending", "#9CA3AF"},
		{"in_progress", "#60A5FA"},
		{"completed", "#10B981"},
		{"blocked", "#F87171"},
		{"unknown", "#9CA3AF"}, // Should fall back to MutedColor
		{"", "#9CA3AF"},
		{"COMPLETED", "#9CA3AF"}, // Case sensitive; unrecognized falls back
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := StatusColor(tt.status)
			if string(got) != tt.expected {
				t.Errorf("StatusColor(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestStatusColorDistinctPerKnownStatus(t *testing.T) {
	known := []string{"pending", "in_progress", "completed", "blocked"}
	seen := make(map[string]string)
	for _, status := range known {
		color := string(StatusColor(status))
		if prev, ok := seen[color]; ok {
			t.Errorf("statuses %q and %q share color %q", prev, status, color)
		}
		seen[color] = status
	}
}

func TestStatusIcon(t *testing.T) {
	tests := []struct {
		status   string
		expected string
	}{
		{"completed", "✓"},
		{"blocked", "✗"},
		{"in_progress", "●"},
		{"pending", "○"},
		{"unknown", "○"}, // Should fall back to the neutral marker
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := StatusIcon(tt.status)
			if got != tt.expected {
				t.Errorf("StatusIcon(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestStatusBadgeContainsStatusText(t *testing.T) {
	for _, status := range []string{"pending", "in_progress", "completed", "blocked", "weird"} {
		if got := StatusBadge(status); !strings.Contains(got, status) {
			t.Errorf("StatusBadge(%q) = %q, missing status text", status, got)
		}
	}
}

func TestPriorityBadge(t *testing.T) {
	tests := []struct {
		priority int
		label    string
	}{
		{0, "P0"},
		{1, "P1"},
		{2, "P2"},
		{7, "P7"},
	}

	for _, tt := range tests {
		got := PriorityBadge(tt.priority)
		if !strings.Contains(got, tt.label) {
			t.Errorf("PriorityBadge(%d) = %q, missing label %q", tt.priority, got, tt.label)
		}
	}

	// 0 and 1 get distinct treatments; 2 and up share the neutral default.
	if PriorityBadge(2) == PriorityBadge(0) || PriorityBadge(2) == PriorityBadge(1) {
		t.Error("neutral priority badge should differ from urgent and high treatments")
	}
}
