// ABOUTME: Tests for the book command
// ABOUTME: Verifies idempotency key generation, formatting, and exit codes

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/barberslot/barberslot-cli/internal/client"
)

func resetBookFlags() {
	bookService = ""
	bookDate = ""
	bookTime = ""
	bookName = ""
	bookEmail = ""
	bookPhone = ""
	bookFor = ""
	bookRequest = ""
	bookKey = ""
}

func TestBookCommand_Success(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bookings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotKey = r.Header.Get("Idempotency-Key")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client.Booking{
			ID:           "bk-1",
			Date:         "2026-09-03",
			Time:         "10:00",
			CustomerName: "Marcus",
			ServiceName:  "Skin fade",
			Status:       "confirmed",
		})
	}))
	defer server.Close()

	apiURL = server.URL
	resetBookFlags()
	bookDate = "2026-09-03"
	bookTime = "10:00"
	bookName = "Marcus"
	bookEmail = "marcus@example.com"
	bookPhone = "07700900000"
	defer func() {
		apiURL = ""
		resetBookFlags()
	}()

	var buf bytes.Buffer
	exitCode := runBook(context.Background(), &buf)

	if exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", exitCode)
	}
	if gotKey == "" {
		t.Error("expected a generated idempotency key on the request")
	}
	if !strings.Contains(buf.String(), "Booking confirmed: bk-1") {
		t.Errorf("expected confirmation in output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Skin fade") {
		t.Error("expected service name in output")
	}
}

func TestBookCommand_ExplicitKeyIsSent(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client.Booking{ID: "bk-1", Date: "2026-09-03", Time: "10:00"})
	}))
	defer server.Close()

	apiURL = server.URL
	resetBookFlags()
	bookDate = "2026-09-03"
	bookTime = "10:00"
	bookName = "Marcus"
	bookEmail = "marcus@example.com"
	bookPhone = "07700900000"
	bookKey = "retry-key-7"
	defer func() {
		apiURL = ""
		resetBookFlags()
	}()

	var buf bytes.Buffer
	if exitCode := runBook(context.Background(), &buf); exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if gotKey != "retry-key-7" {
		t.Errorf("expected explicit idempotency key, got %q", gotKey)
	}
}

func TestBookCommand_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "slot is full"})
	}))
	defer server.Close()

	apiURL = server.URL
	resetBookFlags()
	bookDate = "2026-09-03"
	bookTime = "10:00"
	bookName = "Marcus"
	bookEmail = "marcus@example.com"
	bookPhone = "07700900000"
	defer func() {
		apiURL = ""
		resetBookFlags()
	}()

	var buf bytes.Buffer
	exitCode := runBook(context.Background(), &buf)

	if exitCode != 1 {
		t.Errorf("expected exit code 1 for a validation error, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "slot is full") {
		t.Error("expected backend message in output")
	}
}

func TestBookCommand_ConnectionError(t *testing.T) {
	apiURL = "http://localhost:1"
	resetBookFlags()
	bookDate = "2026-09-03"
	bookTime = "10:00"
	bookName = "Marcus"
	bookEmail = "marcus@example.com"
	bookPhone = "07700900000"
	defer func() {
		apiURL = ""
		resetBookFlags()
	}()

	var buf bytes.Buffer
	exitCode := runBook(context.Background(), &buf)

	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
}
