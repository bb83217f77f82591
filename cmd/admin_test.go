// ABOUTME: Tests for the admin command tree
// ABOUTME: Verifies settings round-trips, formatting, and error mapping

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/barberslot/barberslot-cli/internal/client"
)

func TestFormatSettingsHuman(t *testing.T) {
	s := &client.ShopSettings{
		ServicesEnabled:   true,
		GalleryEnabled:    false,
		CalloutsEnabled:   true,
		WalkInsEnabled:    true,
		MaxQueueLength:    8,
		BookingWindowDays: 14,
		SlotCapacity:      2,
	}

	output := formatSettingsHuman(s)

	if !strings.Contains(output, "Services:        on") {
		t.Error("expected services on")
	}
	if !strings.Contains(output, "Gallery:         off") {
		t.Error("expected gallery off")
	}
	if !strings.Contains(output, "Booking window:  14 days") {
		t.Error("expected booking window")
	}
}

func TestFormatCalloutsHuman(t *testing.T) {
	jobs := []client.CalloutJob{
		{ID: "co-1", CustomerName: "Elaine", Address: "4 Mews Ln", Status: "assigned", BarberName: "Tony"},
		{ID: "co-2", CustomerName: "Raj", Address: "9 Hill Rd", Status: "pending"},
	}

	output := formatCalloutsHuman(jobs)

	if !strings.Contains(output, "Elaine") || !strings.Contains(output, "Tony") {
		t.Error("expected assigned job with barber in output")
	}
	if !strings.Contains(output, "pending") {
		t.Error("expected pending status in output")
	}
}

func TestFormatCalloutsHuman_Empty(t *testing.T) {
	if got := formatCalloutsHuman(nil); got != "No call-out jobs." {
		t.Errorf("unexpected empty message: %q", got)
	}
}

func TestRunAdminSettings_ReadOnly(t *testing.T) {
	var sawPut bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			sawPut = true
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client.ShopSettings{
			ServicesEnabled: true,
			WalkInsEnabled:  true,
			MaxQueueLength:  10,
		})
	}))
	defer server.Close()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	apiURL = server.URL
	defer func() { apiURL = "" }()

	cmd := adminSettingsCmd
	var buf bytes.Buffer
	exitCode := runAdminSettings(context.Background(), cmd, &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if sawPut {
		t.Error("expected no update without changed flags")
	}
	if !strings.Contains(buf.String(), "Max queue:       10") {
		t.Errorf("expected settings in output, got %q", buf.String())
	}
}

func TestRunAdminSettings_UpdatesChangedFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPut {
			var s client.ShopSettings
			json.NewDecoder(r.Body).Decode(&s)
			if s.MaxQueueLength != 5 {
				t.Errorf("expected max queue 5 in update, got %d", s.MaxQueueLength)
			}
			json.NewEncoder(w).Encode(s)
			return
		}
		json.NewEncoder(w).Encode(client.ShopSettings{MaxQueueLength: 10, WalkInsEnabled: true})
	}))
	defer server.Close()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	apiURL = server.URL
	defer func() { apiURL = "" }()

	cmd := adminSettingsCmd
	if err := cmd.Flags().Set("max-queue", "5"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	exitCode := runAdminSettings(context.Background(), cmd, &buf)

	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d: %s", exitCode, buf.String())
	}
	if !strings.Contains(buf.String(), "Max queue:       5") {
		t.Errorf("expected updated settings in output, got %q", buf.String())
	}
}

func TestAdminExit_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"auth", &client.APIError{Kind: client.KindAuth, Message: "admin access required"}, 1},
		{"validation", &client.APIError{Kind: client.KindValidation, Message: "bad input"}, 1},
		{"server", &client.APIError{Kind: client.KindServer, Message: "boom"}, 2},
		{"plain", errors.New("connection refused"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := adminExit(&buf, tt.err); got != tt.want {
				t.Errorf("expected exit %d, got %d", tt.want, got)
			}
			if !strings.Contains(buf.String(), "Error:") {
				t.Error("expected error prefix in output")
			}
		})
	}
}
