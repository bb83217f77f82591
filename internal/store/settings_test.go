// ABOUTME: Tests for the shop settings slice
// ABOUTME: Soft-failing fetch, role-based endpoint choice, and local patches

package store

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/barberslot/barberslot-cli/internal/client"
)

func TestFetchSettings_ReplacesWholesale(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.ShopSettings{
			ServicesEnabled: false,
			GalleryEnabled:  true,
			MaxQueueLength:  25,
		})
	})
	s, server := newTestStore(mux)
	defer server.Close()

	s.FetchSettings(context.Background())

	got := s.Settings()
	if got.ServicesEnabled {
		t.Error("expected services disabled")
	}
	if got.MaxQueueLength != 25 {
		t.Errorf("expected queue length 25, got %d", got.MaxQueueLength)
	}
}

func TestFetchSettings_FailureRetainsPreviousValues(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	s, server := newTestStore(mux)
	defer server.Close()

	before := s.Settings()
	s.FetchSettings(context.Background())

	if got := s.Settings(); got != before {
		t.Errorf("failed fetch must retain previous values, got %+v", got)
	}
	if got := s.Session().ErrorMessage; got != "" {
		t.Errorf("settings failures are silent, got %q", got)
	}
}

func TestFetchSettings_AdminSessionUsesAdminEndpoint(t *testing.T) {
	var hitAdmin, hitPublic bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user":  client.User{ID: "a-1", Email: "admin@test.com"},
			"token": "tok-admin",
		})
	})
	mux.HandleFunc("/api/admin/settings", func(w http.ResponseWriter, r *http.Request) {
		hitAdmin = true
		json.NewEncoder(w).Encode(client.ShopSettings{MaxQueueLength: 30})
	})
	mux.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		hitPublic = true
		json.NewEncoder(w).Encode(client.ShopSettings{})
	})
	s, server := newTestStore(mux)
	defer server.Close()

	s.LoginAdmin(context.Background(), "admin@test.com", "pass", "123456")
	s.FetchSettings(context.Background())

	if !hitAdmin || hitPublic {
		t.Errorf("expected admin endpoint only, admin=%v public=%v", hitAdmin, hitPublic)
	}
}

func TestPatchSettings_MergesLocally(t *testing.T) {
	s, server := newTestStore(http.NewServeMux())
	defer server.Close()

	disabled := false
	length := 3
	s.PatchSettings(SettingsPatch{GalleryEnabled: &disabled, MaxQueueLength: &length})

	got := s.Settings()
	if got.GalleryEnabled {
		t.Error("expected gallery disabled")
	}
	if got.MaxQueueLength != 3 {
		t.Errorf("expected queue length 3, got %d", got.MaxQueueLength)
	}
	// Untouched fields keep their defaults
	if !got.ServicesEnabled {
		t.Error("expected services still enabled")
	}
}
