// ABOUTME: Data types mirrored from the BarberSlot API
// ABOUTME: JSON shapes for users, services, bookings, queue, and settings

package client

import "time"

// User is the identity of an authenticated actor
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// Service is a bookable barbershop service
type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DurationMin int    `json:"duration_min"`
	PriceCents  int    `json:"price_cents"`
}

// ShopSettings is server-controlled configuration used to branch UI behavior
type ShopSettings struct {
	ServicesEnabled   bool `json:"services_enabled"`
	GalleryEnabled    bool `json:"gallery_enabled"`
	CalloutsEnabled   bool `json:"callouts_enabled"`
	WalkInsEnabled    bool `json:"walk_ins_enabled"`
	MaxQueueLength    int  `json:"max_queue_length"`
	BookingWindowDays int  `json:"booking_window_days"`
	SlotCapacity      int  `json:"slot_capacity"`
}

// Booking is a scheduled appointment
type Booking struct {
	ID                string    `json:"id"`
	ServiceID         string    `json:"service_id,omitempty"`
	ServiceName       string    `json:"service_name,omitempty"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	CustomerName      string    `json:"customer_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	BookingFor        string    `json:"booking_for,omitempty"`
	SpecialRequest    string    `json:"special_request,omitempty"`
	InspirationPhotos []string  `json:"inspiration_photos,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// QueueEntry is a position in the walk-in queue
type QueueEntry struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Position         int       `json:"position"`
	Status           string    `json:"status"` // waiting, called, done
	BarberName       string    `json:"barber_name,omitempty"`
	EstimatedWaitMin int       `json:"estimated_wait_min"`
	JoinedAt         time.Time `json:"joined_at"`
}

// CalloutJob is a mobile-barber (call-out) booking
type CalloutJob struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Details      string    `json:"details,omitempty"`
	Status       string    `json:"status"` // pending, assigned, completed
	BarberID     string    `json:"barber_id,omitempty"`
	BarberName   string    `json:"barber_name,omitempty"`
	ScheduledFor string    `json:"scheduled_for,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

// Barber is a staff member
type Barber struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	Active    bool   `json:"active"`
}

// Customer is an admin-visible customer record
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryImage is an inspiration/gallery photo reference
type GalleryImage struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	Caption    string    `json:"caption,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// HealthResponse represents the /api/health endpoint response
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version,omitempty"`
	Database string `json:"database,omitempty"`
}
