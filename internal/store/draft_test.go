// ABOUTME: Tests for the booking draft slice
// ABOUTME: Merge semantics, step counter, prefill policy, and clearing

package store

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	"github.com/barberslot/barberslot-cli/internal/client"
)

func strPtr(s string) *string { return &s }

func TestUpdateDraft_MergesDisjointFields(t *testing.T) {
	s, server := newTestStore(http.NewServeMux())
	defer server.Close()

	s.UpdateDraft(DraftPatch{ServiceID: strPtr("svc-1"), ServiceName: strPtr("Skin Fade")})
	s.UpdateDraft(DraftPatch{Date: strPtr("2026-09-01")})

	d := s.Draft()
	if d.ServiceID != "svc-1" || d.Date != "2026-09-01" {
		t.Errorf("expected both fields present, got %+v", d)
	}
}

func TestUpdateDraft_LastWriteWins(t *testing.T) {
	s, server := newTestStore(http.NewServeMux())
	defer server.Close()

	s.UpdateDraft(DraftPatch{Time: strPtr("09:00")})
	s.UpdateDraft(DraftPatch{Time: strPtr("10:30")})

	if got := s.Draft().Time; got != "10:30" {
		t.Errorf("expected 10:30, got %s", got)
	}
}

func TestUpdateDraft_AssignsStableID(t *testing.T) {
	s, server := newTestStore(http.NewServeMux())
	defer server.Close()

	s.UpdateDraft(DraftPatch{Date: strPtr("2026-09-01")})
	id := s.Draft().ID
	if id == "" {
		t.Fatal("expected draft ID to be assigned")
	}
	s.UpdateDraft(DraftPatch{Time: strPtr("09:00")})
	if s.Draft().ID != id {
		t.Error("draft ID must be stable across updates")
	}
}

func TestSetStep_OverwritesBothDirections(t *testing.T) {
	s, server := newTestStore(http.NewServeMux())
	defer server.Close()

	s.SetStep(3)
	if got := s.Draft().StepCompleted; got != 3 {
		t.Errorf("expected step 3, got %d", got)
	}
	// Backward navigation just overwrites; the counter drives UI only
	s.SetStep(1)
	if got := s.Draft().StepCompleted; got != 1 {
		t.Errorf("expected step 1, got %d", got)
	}
}

func TestClearDraft_AlwaysReturnsEmptyShape(t *testing.T) {
	s, server := newTestStore(http.NewServeMux())
	defer server.Close()

	s.UpdateDraft(DraftPatch{
		ServiceID:         strPtr("svc-1"),
		Date:              strPtr("2026-09-01"),
		Time:              strPtr("09:00"),
		Name:              strPtr("Sam"),
		InspirationPhotos: []string{"https://img.test/1.jpg"},
	})
	s.SetStep(4)
	s.ClearDraft()

	if got := s.Draft(); !reflect.DeepEqual(got, BookingDraft{}) {
		t.Errorf("expected empty draft, got %+v", got)
	}
}

func TestPrefillFromSession_CopiesContactFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user":  client.User{ID: "u-1", Email: "user@test.com", Name: "Sam", Phone: "555-0100"},
			"token": "tok-abc",
		})
	})
	s, server := newTestStore(mux)
	defer server.Close()

	s.Login(context.Background(), "user@test.com", "correctpass")
	s.PrefillFromSession()

	d := s.Draft()
	if d.Name != "Sam" || d.Email != "user@test.com" || d.Phone != "555-0100" {
		t.Errorf("expected contact fields prefilled, got %+v", d)
	}
}

func TestPrefillFromSession_NoopWithoutSession(t *testing.T) {
	s, server := newTestStore(http.NewServeMux())
	defer server.Close()

	s.PrefillFromSession()
	if got := s.Draft(); !reflect.DeepEqual(got, BookingDraft{}) {
		t.Errorf("expected untouched draft, got %+v", got)
	}
}

func TestDraft_ReturnsCopy(t *testing.T) {
	s, server := newTestStore(http.NewServeMux())
	defer server.Close()

	s.UpdateDraft(DraftPatch{InspirationPhotos: []string{"https://img.test/1.jpg"}})
	d := s.Draft()
	d.InspirationPhotos[0] = "mutated"

	if s.Draft().InspirationPhotos[0] != "https://img.test/1.jpg" {
		t.Error("selector must return a defensive copy")
	}
}
