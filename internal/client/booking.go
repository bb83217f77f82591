// ABOUTME: Public booking and display endpoints of the BarberSlot API
// ABOUTME: Services, availability, booking submission, call-outs, queue, gallery

package client

import (
	"context"
	"net/http"
	"net/url"
)

// BookingRequest is the payload for submitting a composed appointment.
// ServiceID may be empty when the customer skipped service selection.
type BookingRequest struct {
	ServiceID         string   `json:"service_id,omitempty"`
	Date              string   `json:"date"`
	Time              string   `json:"time"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	BookingFor        string   `json:"booking_for,omitempty"`
	SpecialRequest    string   `json:"special_request,omitempty"`
	InspirationPhotos []string `json:"inspiration_photos,omitempty"`
}

// CalloutRequest is the payload for a mobile-barber booking
type CalloutRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Details       string `json:"details,omitempty"`
	PreferredTime string `json:"preferred_time,omitempty"`
}

// Services calls GET /api/services
func (c *Client) Services(ctx context.Context) ([]Service, error) {
	var services []Service
	if err := c.get(ctx, "/api/services", &services); err != nil {
		return nil, err
	}
	return services, nil
}

// AvailableDates calls GET /api/availability/dates.
// Dates are ISO strings (YYYY-MM-DD) inside the shop's booking window.
func (c *Client) AvailableDates(ctx context.Context) ([]string, error) {
	var resp struct {
		Dates []string `json:"dates"`
	}
	if err := c.get(ctx, "/api/availability/dates", &resp); err != nil {
		return nil, err
	}
	return resp.Dates, nil
}

// AvailableTimes calls GET /api/availability/times for the given date
func (c *Client) AvailableTimes(ctx context.Context, date string) ([]string, error) {
	var resp struct {
		Times []string `json:"times"`
	}
	path := "/api/availability/times?date=" + url.QueryEscape(date)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Times, nil
}

// CreateBooking calls POST /api/bookings. The idempotency key lets the server
// dedupe a retried submission so a flaky network cannot double-book.
func (c *Client) CreateBooking(ctx context.Context, req *BookingRequest, idempotencyKey string) (*Booking, error) {
	var booking Booking
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &booking, headers); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateCallout calls POST /api/callouts
func (c *Client) CreateCallout(ctx context.Context, req *CalloutRequest) (*CalloutJob, error) {
	var job CalloutJob
	if err := c.post(ctx, "/api/callouts", req, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Queue calls GET /api/queue for the public walk-in queue display
func (c *Client) Queue(ctx context.Context) ([]QueueEntry, error) {
	var entries []QueueEntry
	if err := c.get(ctx, "/api/queue", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Gallery calls GET /api/gallery
func (c *Client) Gallery(ctx context.Context) ([]GalleryImage, error) {
	var images []GalleryImage
	if err := c.get(ctx, "/api/gallery", &images); err != nil {
		return nil, err
	}
	return images, nil
}

// Settings calls the public GET /api/settings
func (c *Client) Settings(ctx context.Context) (*ShopSettings, error) {
	var settings ShopSettings
	if err := c.get(ctx, "/api/settings", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Health calls GET /api/health
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.get(ctx, "/api/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}
