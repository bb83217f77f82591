// ABOUTME: Tests for the BarberSlot API client core and public endpoints
// ABOUTME: Uses httptest to mock backend responses

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHealth_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("expected path /api/health, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Database: "ok"})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
}

func TestHealth_ConnectionError(t *testing.T) {
	c := New("http://localhost:99999")
	_, err := c.Health(context.Background())
	if err == nil {
		t.Fatal("expected connection error, got nil")
	}
	if !IsNetwork(err) {
		t.Errorf("expected network error, got %v", err)
	}
}

func TestHealth_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := c.Health(ctx)
	if err == nil {
		t.Error("expected error for canceled context, got nil")
	}
}

func TestServices_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/services" {
			t.Errorf("expected path /api/services, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Service{
			{ID: "svc-1", Name: "Skin Fade", DurationMin: 45, PriceCents: 3500},
			{ID: "svc-2", Name: "Beard Trim", DurationMin: 20, PriceCents: 1500},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	services, err := c.Services(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
	if services[0].Name != "Skin Fade" {
		t.Errorf("expected Skin Fade, got %s", services[0].Name)
	}
}

func TestAvailableTimes_EncodesDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("date"); got != "2026-09-01" {
			t.Errorf("expected date query 2026-09-01, got %s", got)
		}
		json.NewEncoder(w).Encode(map[string][]string{"times": {"09:00", "09:30"}})
	}))
	defer server.Close()

	c := New(server.URL)
	times, err := c.AvailableTimes(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 2 || times[0] != "09:00" {
		t.Errorf("unexpected times: %v", times)
	}
}

func TestCreateBooking_SendsIdempotencyKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/bookings" {
			t.Errorf("expected POST /api/bookings, got %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Idempotency-Key"); got != "draft-123" {
			t.Errorf("expected Idempotency-Key draft-123, got %q", got)
		}
		var req BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.ServiceID != "" {
			t.Errorf("expected empty service_id for skipped service, got %s", req.ServiceID)
		}
		json.NewEncoder(w).Encode(Booking{ID: "bk-1", Date: req.Date, Time: req.Time, Status: "confirmed"})
	}))
	defer server.Close()

	c := New(server.URL)
	booking, err := c.CreateBooking(context.Background(), &BookingRequest{
		Date:  "2026-09-01",
		Time:  "09:00",
		Name:  "Sam",
		Email: "sam@test.com",
		Phone: "555-0100",
	}, "draft-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.ID != "bk-1" {
		t.Errorf("expected booking bk-1, got %s", booking.ID)
	}
	if booking.Status != "confirmed" {
		t.Errorf("expected status confirmed, got %s", booking.Status)
	}
}

func TestCreateBooking_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"error": "slot already booked", "code": 422})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.CreateBooking(context.Background(), &BookingRequest{Date: "2026-09-01", Time: "09:00"}, "")
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !IsValidation(err) {
		t.Errorf("expected validation kind, got %v", err)
	}
	if err.Error() != "slot already booked" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestQueue_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]QueueEntry{
			{ID: "q-1", Name: "Alex", Position: 1, Status: "waiting", EstimatedWaitMin: 15},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	entries, err := c.Queue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Position != 1 {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestDo_MalformedErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Services(context.Background())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != "backend returned status 500" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
