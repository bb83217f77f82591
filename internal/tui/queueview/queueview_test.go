// ABOUTME: Tests for the customer queue view
// ABOUTME: Validates wait counts and full-queue messaging

package queueview

import (
	"strings"
	"testing"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/store"
)

func TestQueueViewWaitingCount(t *testing.T) {
	entries := []client.QueueEntry{
		{ID: "q-1", Name: "Sam", Position: 1, Status: "waiting"},
		{ID: "q-2", Name: "Alex", Position: 2, Status: "called"},
		{ID: "q-3", Name: "Jo", Position: 3, Status: "waiting"},
	}
	q := New(entries, store.DefaultSettings(), 80, 24)

	if q.Waiting() != 2 {
		t.Errorf("expected 2 waiting, got %d", q.Waiting())
	}
}

func TestQueueViewEmptyMessage(t *testing.T) {
	q := New(nil, store.DefaultSettings(), 80, 24)

	if !strings.Contains(q.View(), "Walk right in") {
		t.Error("expected empty-queue message")
	}
}

func TestQueueViewFullWarning(t *testing.T) {
	settings := store.DefaultSettings()
	settings.MaxQueueLength = 2
	entries := []client.QueueEntry{
		{ID: "q-1", Name: "Sam", Position: 1, Status: "waiting"},
		{ID: "q-2", Name: "Alex", Position: 2, Status: "waiting"},
	}
	q := New(entries, settings, 80, 24)

	if !strings.Contains(q.View(), "Queue is full") {
		t.Error("expected full-queue warning")
	}
}

func TestQueueViewShowsWaitEstimate(t *testing.T) {
	entries := []client.QueueEntry{
		{ID: "q-1", Name: "Sam", Position: 1, Status: "waiting", EstimatedWaitMin: 25},
	}
	q := New(entries, store.DefaultSettings(), 80, 24)

	if !strings.Contains(q.View(), "~25 min") {
		t.Error("expected wait estimate in view")
	}
}
