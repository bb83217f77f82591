// ABOUTME: Error taxonomy for BarberSlot API failures
// ABOUTME: Distinguishes network, validation, auth, and server errors

package client

import "errors"

// ErrorKind classifies an API failure
type ErrorKind int

const (
	// KindNetwork means no usable response was received
	KindNetwork ErrorKind = iota
	// KindValidation is a 4xx rejection with a structured message
	KindValidation
	// KindAuth is a 401/403-class failure (bad credentials, expired token, lockout)
	KindAuth
	// KindServer is any other non-2xx response
	KindServer
)

// APIError is a typed failure from the backend or the transport
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Details    string
	cause      error
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// IsNetwork reports whether err is a transport-level failure
func IsNetwork(err error) bool {
	return kindOf(err) == KindNetwork
}

// IsValidation reports whether err is a structured 4xx rejection
func IsValidation(err error) bool {
	return kindOf(err) == KindValidation
}

// IsAuth reports whether err is a credentials/authorization failure
func IsAuth(err error) bool {
	return kindOf(err) == KindAuth
}

func kindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return -1
}
