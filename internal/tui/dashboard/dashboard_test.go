// ABOUTME: Tests for the admin dashboard component
// ABOUTME: Validates table data, focus switching, and optimistic updates

package dashboard

import (
	"strings"
	"testing"

	"github.com/barberslot/barberslot-cli/internal/client"
	"github.com/barberslot/barberslot-cli/internal/store"
)

func sampleData() ([]client.QueueEntry, []client.CalloutJob, []client.Barber) {
	queue := []client.QueueEntry{
		{ID: "q-1", Name: "Sam", Position: 1, Status: "waiting", EstimatedWaitMin: 15},
		{ID: "q-2", Name: "Alex", Position: 2, Status: "called", BarberName: "Marco"},
	}
	callouts := []client.CalloutJob{
		{ID: "c-1", CustomerName: "Jo", Address: "12 High St", Status: "pending"},
		{ID: "c-2", CustomerName: "Pat", Address: "3 Mill Rd", Status: "assigned", BarberName: "Marco"},
	}
	barbers := []client.Barber{
		{ID: "b-1", Name: "Marco", Active: true},
		{ID: "b-2", Name: "Deniz", Active: false},
	}
	return queue, callouts, barbers
}

func newDashboard() *Dashboard {
	d := New(store.DefaultSettings(), 100, 40)
	d.SetData(sampleData())
	return d
}

func TestDashboardCounts(t *testing.T) {
	d := newDashboard()

	if d.Waiting() != 1 {
		t.Errorf("expected 1 waiting, got %d", d.Waiting())
	}
	if d.Pending() != 1 {
		t.Errorf("expected 1 pending call-out, got %d", d.Pending())
	}
}

func TestDashboardSelection(t *testing.T) {
	d := newDashboard()

	e := d.SelectedQueueEntry()
	if e == nil || e.ID != "q-1" {
		t.Fatalf("expected first queue entry selected, got %+v", e)
	}

	d.ToggleFocus()
	if d.Focus() != PaneCallouts {
		t.Error("expected focus on call-outs after toggle")
	}
	j := d.SelectedCallout()
	if j == nil || j.ID != "c-1" {
		t.Fatalf("expected first call-out selected, got %+v", j)
	}
}

func TestDashboardOptimisticQueueStatus(t *testing.T) {
	d := newDashboard()

	d.MarkQueueStatus("q-1", "called", "Marco")

	e := d.SelectedQueueEntry()
	if e.Status != "called" || e.BarberName != "Marco" {
		t.Errorf("expected optimistic call, got %+v", e)
	}
	if d.Waiting() != 0 {
		t.Errorf("expected 0 waiting after call, got %d", d.Waiting())
	}
}

func TestDashboardOptimisticCalloutAssignment(t *testing.T) {
	d := newDashboard()

	d.MarkCalloutAssigned("c-1", "Marco")

	if d.Pending() != 0 {
		t.Errorf("expected 0 pending after assignment, got %d", d.Pending())
	}

	d.MarkCalloutCompleted("c-2")
	for _, c := range d.callouts {
		if c.ID == "c-2" && c.Status != "completed" {
			t.Errorf("expected completion, got %s", c.Status)
		}
	}
}

func TestDashboardNextBarberSkipsInactive(t *testing.T) {
	d := newDashboard()

	b := d.NextBarber()
	if b == nil || b.ID != "b-1" {
		t.Fatalf("expected first active barber, got %+v", b)
	}

	d.barbers[0].Active = false
	if d.NextBarber() != nil {
		t.Error("expected nil when no barber is active")
	}
}

func TestDashboardSetDataKeepsCursor(t *testing.T) {
	d := newDashboard()
	d.queueTable.SetCursor(1)

	d.SetData(sampleData())

	e := d.SelectedQueueEntry()
	if e == nil || e.ID != "q-2" {
		t.Errorf("expected cursor kept on second entry, got %+v", e)
	}
}

func TestDashboardViewRendersSections(t *testing.T) {
	d := newDashboard()

	view := d.View()
	if !strings.Contains(view, "Queue") {
		t.Error("expected queue section")
	}
	if !strings.Contains(view, "Call-outs") {
		t.Error("expected call-outs section")
	}
	if !strings.Contains(view, "Sam") {
		t.Error("expected queue entry names in view")
	}
}
