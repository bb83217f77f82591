// ABOUTME: Booking draft slice of the store
// ABOUTME: A scratchpad accumulating wizard choices; validated only by the server at submit

package store

import "github.com/google/uuid"

// BookingDraft is the in-progress, not-yet-submitted appointment composed
// across wizard steps. Fields need not be mutually consistent until
// submission. ID doubles as the Idempotency-Key on submit.
type BookingDraft struct {
	ID                string   `json:"id,omitempty"`
	ServiceID         string   `json:"service_id,omitempty"`
	ServiceName       string   `json:"service_name,omitempty"`
	Date              string   `json:"date,omitempty"`
	Time              string   `json:"time,omitempty"`
	Name              string   `json:"name,omitempty"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	BookingFor        string   `json:"booking_for,omitempty"`
	SpecialRequest    string   `json:"special_request,omitempty"`
	InspirationPhotos []string `json:"inspiration_photos,omitempty"`
	StepCompleted     int      `json:"step_completed"`
}

// DraftPatch is a partial update; nil fields are left untouched
type DraftPatch struct {
	ServiceID         *string
	ServiceName       *string
	Date              *string
	Time              *string
	Name              *string
	Email             *string
	Phone             *string
	BookingFor        *string
	SpecialRequest    *string
	InspirationPhotos []string
}

// Draft returns a copy of the booking draft
func (s *Store) Draft() BookingDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft
	if d.InspirationPhotos != nil {
		d.InspirationPhotos = append([]string(nil), d.InspirationPhotos...)
	}
	return d
}

// UpdateDraft shallow-merges the patch into the draft. Last write wins;
// no validation happens here - each step view validates its own required
// fields before advancing.
func (s *Store) UpdateDraft(patch DraftPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.ID == "" {
		s.draft.ID = uuid.NewString()
	}
	if patch.ServiceID != nil {
		s.draft.ServiceID = *patch.ServiceID
	}
	if patch.ServiceName != nil {
		s.draft.ServiceName = *patch.ServiceName
	}
	if patch.Date != nil {
		s.draft.Date = *patch.Date
	}
	if patch.Time != nil {
		s.draft.Time = *patch.Time
	}
	if patch.Name != nil {
		s.draft.Name = *patch.Name
	}
	if patch.Email != nil {
		s.draft.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.draft.Phone = *patch.Phone
	}
	if patch.BookingFor != nil {
		s.draft.BookingFor = *patch.BookingFor
	}
	if patch.SpecialRequest != nil {
		s.draft.SpecialRequest = *patch.SpecialRequest
	}
	if patch.InspirationPhotos != nil {
		s.draft.InspirationPhotos = append([]string(nil), patch.InspirationPhotos...)
	}
	s.persistLocked()
	s.notifyLocked(SliceDraft)
}

// SetStep records the furthest-completed step. Backward navigation simply
// overwrites with a smaller value; the counter only drives UI affordances.
func (s *Store) SetStep(step int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.StepCompleted = step
	s.persistLocked()
	s.notifyLocked(SliceDraft)
}

// PrefillFromSession copies the authenticated user's contact details into
// the draft. No-op without a session. Callers invoke this once on entering
// the booking flow, not on every render, so later edits are not clobbered.
func (s *Store) PrefillFromSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.Status.IsAuthenticated || s.session.CurrentUser == nil {
		return
	}
	if s.draft.ID == "" {
		s.draft.ID = uuid.NewString()
	}
	u := s.session.CurrentUser
	s.draft.Name = u.Name
	s.draft.Email = u.Email
	s.draft.Phone = u.Phone
	s.persistLocked()
	s.notifyLocked(SliceDraft)
}

// ClearDraft resets to the empty draft. Called after a successful
// submission and on explicit cancel.
func (s *Store) ClearDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = BookingDraft{}
	s.persistLocked()
	s.notifyLocked(SliceDraft)
}
