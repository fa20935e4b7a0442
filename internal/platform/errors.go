package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a resolution failure: the identifier matched no
	// record. Callers render a distinct not-found state, not an error banner.
	ErrNotFound = errors.New("record not found")

	// ErrNetwork wraps transport failures where no response was received.
	ErrNetwork = errors.New("network error")

	// ErrAuthExpired is returned on a 401. The gateway clears the stored
	// session before returning it.
	ErrAuthExpired = errors.New("authentication expired")
)

// APIError is a structured failure the platform responded with, either a
// non-2xx status or a 2xx envelope carrying success:false. The two are
// treated identically for error reporting.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("platform api: request failed (status %d)", e.Status)
}

const (
	genericFailureMessage = "Something went wrong. Please try again."
	networkFailureMessage = "Unable to reach the server. Please check your connection."
	expiredSessionMessage = "Your session has expired. Please log in again."
	notFoundMessage       = "Record not found"
)

// ToUserMessage normalizes any gateway error into a plain human-readable
// string: the server-provided message verbatim when there is one, generic
// fallbacks otherwise. Components receive strings, never transport shapes.
func ToUserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	switch {
	case errors.Is(err, ErrAuthExpired):
		return expiredSessionMessage
	case errors.Is(err, ErrNotFound):
		return notFoundMessage
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return genericFailureMessage
	case errors.Is(err, ErrNetwork):
		return networkFailureMessage
	}
	return genericFailureMessage
}
