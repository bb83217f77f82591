// ABOUTME: Session slice of the store: authentication lifecycle and identity
// ABOUTME: Login, admin login with second factor, register, logout, restore, local patches

package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/barberslot/barberslot-cli/internal/client"
)

// errIncompleteAuth rejects a 2xx login response that is missing the
// identity or the token; authenticating on one would leave the session
// claiming IsAuthenticated with no user to show or no token to send.
var errIncompleteAuth = errors.New("login response missing user or token")

// UserType is the role of the authenticated actor
type UserType string

const (
	UserTypeNone     UserType = "none"
	UserTypeCustomer UserType = "customer"
	UserTypeAdmin    UserType = "admin"
)

// SessionStatus is the authentication status triple
type SessionStatus struct {
	IsAuthenticated bool     `json:"is_authenticated"`
	IsLoading       bool     `json:"is_loading"`
	UserType        UserType `json:"user_type"`
}

// Session is the authenticated-actor state. Invariant: IsAuthenticated is
// true iff CurrentUser and AuthToken are both set and UserType is customer
// or admin; false implies all three are empty.
type Session struct {
	CurrentUser  *client.User  `json:"current_user"`
	AuthToken    string        `json:"auth_token"`
	Status       SessionStatus `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

// UserPatch is a partial update to the current user's identity fields
type UserPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Verified *bool
}

// Session returns a copy of the session slice
func (s *Store) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session
	if sess.CurrentUser != nil {
		u := *sess.CurrentUser
		sess.CurrentUser = &u
	}
	return sess
}

// IsAuthenticated is a narrow selector for consumers that only branch on
// authentication state.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Status.IsAuthenticated
}

// UserType returns the current actor's role
func (s *Store) UserType() UserType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Status.UserType
}

// Login authenticates a customer. On failure the session is reset to
// unauthenticated with ErrorMessage set, and the error is returned so the
// calling view can render it inline.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	seq := s.dispatchLocked(SliceSession)
	s.session.Status.IsLoading = true
	s.session.ErrorMessage = ""
	s.notifyLocked(SliceSession)
	s.mu.Unlock()

	user, token, err := s.api.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staleLocked(SliceSession, seq) {
		return err
	}
	if err != nil {
		s.resetSessionLocked(err.Error())
		return err
	}
	if user == nil || token == "" {
		s.resetSessionLocked(errIncompleteAuth.Error())
		return errIncompleteAuth
	}
	s.setAuthenticatedLocked(user, token, UserTypeCustomer)
	return nil
}

// LoginAdmin authenticates an admin. When the account requires a second
// factor and none was supplied, it returns (true, nil) with the session
// left unauthenticated and ErrorMessage set to a prompt; this is a
// control-flow signal, not a failure.
func (s *Store) LoginAdmin(ctx context.Context, email, password, secondFactor string) (bool, error) {
	s.mu.Lock()
	seq := s.dispatchLocked(SliceSession)
	s.session.Status.IsLoading = true
	s.session.ErrorMessage = ""
	s.notifyLocked(SliceSession)
	s.mu.Unlock()

	result, err := s.api.AdminLogin(ctx, email, password, secondFactor)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staleLocked(SliceSession, seq) {
		return false, err
	}
	if err != nil {
		s.resetSessionLocked(err.Error())
		return false, err
	}
	if result.RequiresSecondFactor {
		s.session.Status.IsLoading = false
		s.session.ErrorMessage = "enter the verification code to finish signing in"
		s.notifyLocked(SliceSession)
		return true, nil
	}
	if result.User == nil || result.Token == "" {
		s.resetSessionLocked(errIncompleteAuth.Error())
		return false, errIncompleteAuth
	}
	s.setAuthenticatedLocked(result.User, result.Token, UserTypeAdmin)
	return false, nil
}

// Register creates a server-side account. It does not authenticate the
// caller; no token is issued. Validation failures are surfaced in
// ErrorMessage and returned.
func (s *Store) Register(ctx context.Context, email, password, name, phone string) error {
	s.mu.Lock()
	s.session.Status.IsLoading = true
	s.session.ErrorMessage = ""
	s.notifyLocked(SliceSession)
	s.mu.Unlock()

	err := s.api.Register(ctx, email, password, name, phone)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Status.IsLoading = false
	if err != nil {
		s.session.ErrorMessage = err.Error()
	}
	s.notifyLocked(SliceSession)
	return err
}

// Logout clears the local session synchronously and unconditionally, then
// notifies the server in the background. The notification is a courtesy:
// its result is discarded so logout latency never depends on the network.
func (s *Store) Logout() {
	s.mu.Lock()
	s.dispatchLocked(SliceSession)
	token := s.session.AuthToken
	baseURL := s.api.BaseURL()
	s.resetSessionLocked("")
	s.mu.Unlock()

	if token == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c := client.New(baseURL)
		c.SetToken(token)
		if err := c.Logout(ctx); err != nil {
			slog.Debug("logout notification failed", "error", err)
		}
	}()
}

// RestoreSession revalidates a persisted token at startup. With no token
// it just leaves the loading state. A rejected token resets the session
// silently: an expired token on startup is not a user-facing error. The
// cached user type is kept as-is because /api/auth/me confirms identity
// only; every admin endpoint re-authorizes server-side regardless.
func (s *Store) RestoreSession(ctx context.Context) {
	s.mu.Lock()
	seq := s.dispatchLocked(SliceSession)
	token := s.session.AuthToken
	if token == "" {
		s.session.Status.IsLoading = false
		s.notifyLocked(SliceSession)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	// A token whose exp claim is long past cannot revalidate; skip the
	// round trip. The claims are not verified here - the server remains
	// the authority on token validity.
	if tokenLongExpired(token) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.staleLocked(SliceSession, seq) {
			s.resetSessionLocked("")
		}
		return
	}

	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staleLocked(SliceSession, seq) {
		return
	}
	if err != nil || user == nil {
		s.resetSessionLocked("")
		return
	}
	s.session.CurrentUser = user
	s.session.Status.IsAuthenticated = true
	s.session.Status.IsLoading = false
	s.persistLocked()
	s.notifyLocked(SliceSession)
}

// ClearError resets ErrorMessage only. Idempotent.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.ErrorMessage == "" {
		return
	}
	s.session.ErrorMessage = ""
	s.notifyLocked(SliceSession)
}

// PatchCurrentUser merges identity fields locally after a profile edit,
// avoiding a refetch. AuthToken and Status are never touched. No-op when
// unauthenticated.
func (s *Store) PatchCurrentUser(patch UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.CurrentUser == nil {
		return
	}
	u := *s.session.CurrentUser
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Verified != nil {
		u.Verified = *patch.Verified
	}
	s.session.CurrentUser = &u
	s.persistLocked()
	s.notifyLocked(SliceSession)
}

// setAuthenticatedLocked transitions to the authenticated triple
func (s *Store) setAuthenticatedLocked(user *client.User, token string, userType UserType) {
	s.session.CurrentUser = user
	s.session.AuthToken = token
	s.session.Status = SessionStatus{IsAuthenticated: true, IsLoading: false, UserType: userType}
	s.session.ErrorMessage = ""
	s.api.SetToken(token)
	s.persistLocked()
	s.notifyLocked(SliceSession)
}

// resetSessionLocked returns the session to the empty/unauthenticated
// state, optionally recording an error message.
func (s *Store) resetSessionLocked(errorMessage string) {
	s.session.CurrentUser = nil
	s.session.AuthToken = ""
	s.session.Status = SessionStatus{IsAuthenticated: false, IsLoading: false, UserType: UserTypeNone}
	s.session.ErrorMessage = errorMessage
	s.api.SetToken("")
	s.persistLocked()
	s.notifyLocked(SliceSession)
}

// tokenLongExpired peeks at the unverified exp claim and reports whether
// it lies more than a minute in the past. Unparseable tokens are not
// treated as expired; the server gets to decide.
func tokenLongExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Since(exp.Time) > time.Minute
}
