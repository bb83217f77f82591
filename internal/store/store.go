// ABOUTME: Client-side state container for the BarberSlot frontend
// ABOUTME: Owns session, booking draft, and shop settings slices with per-slice subscriptions

package store

import (
	"log/slog"
	"sync"

	"github.com/barberslot/barberslot-cli/internal/client"
)

// Slice identifies an independently subscribable region of the store,
// so a consumer of session state is not woken by draft edits.
type Slice int

const (
	SliceSession Slice = iota
	SliceDraft
	SliceSettings
	sliceCount
)

// Store is the single state container behind every view. Views read via
// selectors and request mutations via actions; server state stays
// authoritative and everything here is re-derivable from a refetch.
type Store struct {
	mu        sync.Mutex
	api       *client.Client
	persister *Persister

	session  Session
	draft    BookingDraft
	settings client.ShopSettings

	// Monotonic dispatch sequence per slice. An async completion applies
	// only if it is still the newest dispatch for its slice, so an older
	// response can never overwrite a newer one.
	seq [sliceCount]uint64

	subs [sliceCount][]chan struct{}
}

// New creates a store wired to the given API client. persister may be nil
// to disable persistence (used by tests). Any persisted session and draft
// are loaded immediately; the session stays in the loading state until
// RestoreSession has revalidated the token.
func New(api *client.Client, persister *Persister) *Store {
	s := &Store{
		api:       api,
		persister: persister,
		session: Session{
			Status: SessionStatus{IsLoading: true, UserType: UserTypeNone},
		},
		settings: DefaultSettings(),
	}

	if persister != nil {
		if rec := persister.Load(); rec != nil {
			s.session.CurrentUser = rec.Authentication.CurrentUser
			s.session.AuthToken = rec.Authentication.AuthToken
			s.session.Status.IsAuthenticated = rec.Authentication.Status.IsAuthenticated
			s.session.Status.UserType = rec.Authentication.Status.UserType
			s.draft = rec.BookingDraft
			api.SetToken(rec.Authentication.AuthToken)
		}
	}
	return s
}

// Subscribe registers interest in one slice. The returned channel receives
// a (coalesced) signal after each mutation of that slice; the cancel func
// removes the registration.
func (s *Store) Subscribe(slice Slice) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs[slice] = append(s.subs[slice], ch)
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		subs := s.subs[slice]
		for i, c := range subs {
			if c == ch {
				s.subs[slice] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
	return ch, cancel
}

// notifyLocked signals all subscribers of a slice. Callers hold s.mu.
// Sends never block: a pending signal is coalesced.
func (s *Store) notifyLocked(slice Slice) {
	for _, ch := range s.subs[slice] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// dispatchLocked advances the slice's sequence and returns the new value.
// Completion callbacks compare against the current value to detect that a
// newer dispatch has superseded them.
func (s *Store) dispatchLocked(slice Slice) uint64 {
	s.seq[slice]++
	return s.seq[slice]
}

// staleLocked reports whether a completion for the given dispatch should
// be dropped because a newer dispatch exists for the slice.
func (s *Store) staleLocked(slice Slice, seq uint64) bool {
	return seq != s.seq[slice]
}

// persistLocked writes the durable subset of state. The allow-list is
// applied here, at the persistence boundary: identity, token, user type,
// and the booking draft survive reloads; loading flags, error messages,
// and settings never do.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	rec := Record{
		Authentication: PersistedAuth{
			CurrentUser: s.session.CurrentUser,
			AuthToken:   s.session.AuthToken,
			Status: PersistedStatus{
				IsAuthenticated: s.session.Status.IsAuthenticated,
				IsLoading:       false,
				UserType:        s.session.Status.UserType,
			},
			ErrorMessage: nil,
		},
		BookingDraft: s.draft,
	}
	if err := s.persister.Save(rec); err != nil {
		slog.Warn("failed to persist state", "error", err)
	}
}
