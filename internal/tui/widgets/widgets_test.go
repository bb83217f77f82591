// ABOUTME: Tests for the shared TUI widgets
// ABOUTME: Covers badges, fill bars, and the queue-depth trend

package widgets

import (
	"strings"
	"testing"
)

func TestQueueBadge(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"waiting", "WAITING"},
		{"called", "CALLED"},
		{"done", "DONE"},
	}

	for _, tt := range tests {
		badge := QueueBadge(tt.status)
		if !strings.Contains(badge, tt.want) {
			t.Errorf("QueueBadge(%q) = %q, expected to contain %q", tt.status, badge, tt.want)
		}
	}
}

func TestQueueFillBar_Label(t *testing.T) {
	bar := QueueFillBar(3, 10, 20)
	if !strings.Contains(bar, "3/10 waiting") {
		t.Errorf("expected fill label in bar, got %q", bar)
	}
}

func TestTrend_Empty(t *testing.T) {
	if got := Trend(nil, 10, 10); got != "" {
		t.Errorf("expected empty trend for no history, got %q", got)
	}
	if got := Trend([]int{1, 2}, 0, 10); got != "" {
		t.Errorf("expected empty trend for zero width, got %q", got)
	}
}

func TestTrend_GrowsFromTheRight(t *testing.T) {
	// Two samples into a width of four: left half padded with zeros
	out := Trend([]int{5, 5}, 4, 10)
	if !strings.Contains(out, "▁") {
		t.Errorf("expected padded low blocks on the left, got %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("expected high blocks for the samples, got %q", out)
	}
}

func TestTrend_FlatHistoryUsesMidBlock(t *testing.T) {
	out := Trend([]int{4, 4, 4, 4}, 4, 10)
	if !strings.Contains(out, "▅") {
		t.Errorf("expected mid blocks for a flat history, got %q", out)
	}
}

func TestSampleCounts_Downsamples(t *testing.T) {
	counts := make([]int, 100)
	for i := range counts {
		counts[i] = i
	}
	sampled := sampleCounts(counts, 10)
	if len(sampled) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(sampled))
	}
	if sampled[0] != 0 || sampled[9] != 90 {
		t.Errorf("unexpected sample endpoints: %d..%d", sampled[0], sampled[9])
	}
}
