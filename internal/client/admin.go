// ABOUTME: Admin endpoints of the BarberSlot API
// ABOUTME: Settings, barber/customer/booking/gallery CRUD, queue and call-out management

package client

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"
)

// AdminSettings calls the authenticated GET /api/admin/settings
func (c *Client) AdminSettings(ctx context.Context) (*ShopSettings, error) {
	var settings ShopSettings
	if err := c.get(ctx, "/api/admin/settings", &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings calls PUT /api/admin/settings and returns the stored value
func (c *Client) UpdateSettings(ctx context.Context, settings *ShopSettings) (*ShopSettings, error) {
	var updated ShopSettings
	if err := c.put(ctx, "/api/admin/settings", settings, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Barbers calls GET /api/admin/barbers
func (c *Client) Barbers(ctx context.Context) ([]Barber, error) {
	var barbers []Barber
	if err := c.get(ctx, "/api/admin/barbers", &barbers); err != nil {
		return nil, err
	}
	return barbers, nil
}

// CreateBarber calls POST /api/admin/barbers
func (c *Client) CreateBarber(ctx context.Context, name, specialty string) (*Barber, error) {
	body := struct {
		Name      string `json:"name"`
		Specialty string `json:"specialty,omitempty"`
	}{name, specialty}
	var barber Barber
	if err := c.post(ctx, "/api/admin/barbers", body, &barber); err != nil {
		return nil, err
	}
	return &barber, nil
}

// DeleteBarber calls DELETE /api/admin/barbers/{id}
func (c *Client) DeleteBarber(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/barbers/"+url.PathEscape(id))
}

// Customers calls GET /api/admin/customers
func (c *Client) Customers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	if err := c.get(ctx, "/api/admin/customers", &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// DeleteCustomer calls DELETE /api/admin/customers/{id}
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/customers/"+url.PathEscape(id))
}

// AdminBookings calls GET /api/admin/bookings
func (c *Client) AdminBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := c.get(ctx, "/api/admin/bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking calls DELETE /api/admin/bookings/{id}
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/bookings/"+url.PathEscape(id))
}

// AdminGallery calls GET /api/admin/gallery
func (c *Client) AdminGallery(ctx context.Context) ([]GalleryImage, error) {
	var images []GalleryImage
	if err := c.get(ctx, "/api/admin/gallery", &images); err != nil {
		return nil, err
	}
	return images, nil
}

// AddGalleryImage calls POST /api/admin/gallery
func (c *Client) AddGalleryImage(ctx context.Context, imageURL, caption string) (*GalleryImage, error) {
	body := struct {
		URL     string `json:"url"`
		Caption string `json:"caption,omitempty"`
	}{imageURL, caption}
	var image GalleryImage
	if err := c.post(ctx, "/api/admin/gallery", body, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// DeleteGalleryImage calls DELETE /api/admin/gallery/{id}
func (c *Client) DeleteGalleryImage(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/admin/gallery/"+url.PathEscape(id))
}

// AdminQueue calls GET /api/admin/queue (includes called/done entries)
func (c *Client) AdminQueue(ctx context.Context) ([]QueueEntry, error) {
	var entries []QueueEntry
	if err := c.get(ctx, "/api/admin/queue", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddWalkIn calls POST /api/admin/queue to append a walk-in customer
func (c *Client) AddWalkIn(ctx context.Context, name string) (*QueueEntry, error) {
	body := struct {
		Name string `json:"name"`
	}{name}
	var entry QueueEntry
	if err := c.post(ctx, "/api/admin/queue", body, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CallQueueEntry calls POST /api/admin/queue/{id}/call
func (c *Client) CallQueueEntry(ctx context.Context, id string) (*QueueEntry, error) {
	var entry QueueEntry
	if err := c.post(ctx, "/api/admin/queue/"+url.PathEscape(id)+"/call", nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CompleteQueueEntry calls POST /api/admin/queue/{id}/done
func (c *Client) CompleteQueueEntry(ctx context.Context, id string) (*QueueEntry, error) {
	var entry QueueEntry
	if err := c.post(ctx, "/api/admin/queue/"+url.PathEscape(id)+"/done", nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Callouts calls GET /api/admin/callouts
func (c *Client) Callouts(ctx context.Context) ([]CalloutJob, error) {
	var jobs []CalloutJob
	if err := c.get(ctx, "/api/admin/callouts", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// AssignCallout calls POST /api/admin/callouts/{id}/assign
func (c *Client) AssignCallout(ctx context.Context, id, barberID string) (*CalloutJob, error) {
	body := struct {
		BarberID string `json:"barber_id"`
	}{barberID}
	var job CalloutJob
	if err := c.post(ctx, "/api/admin/callouts/"+url.PathEscape(id)+"/assign", body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CompleteCallout calls POST /api/admin/callouts/{id}/done
func (c *Client) CompleteCallout(ctx context.Context, id string) (*CalloutJob, error) {
	var job CalloutJob
	if err := c.post(ctx, "/api/admin/callouts/"+url.PathEscape(id)+"/done", nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// Overview bundles the two independently refreshed admin lists
type Overview struct {
	Queue    []QueueEntry
	Callouts []CalloutJob
}

// AdminOverview fetches the walk-in queue and call-out jobs concurrently
func (c *Client) AdminOverview(ctx context.Context) (*Overview, error) {
	var overview Overview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := c.AdminQueue(ctx)
		if err != nil {
			return err
		}
		overview.Queue = entries
		return nil
	})
	g.Go(func() error {
		jobs, err := c.Callouts(ctx)
		if err != nil {
			return err
		}
		overview.Callouts = jobs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
