package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable marks transport-level failures: refused connections,
	// timeouts, DNS errors. The server was never reached or never answered.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks requests rejected with HTTP 401, i.e. the token
	// is missing, invalid or expired.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a non-2xx API response. Message holds the server-supplied error
// text when the body carried one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.Status)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// ServerMessage extracts the server-supplied error text from err, if any.
// Returns "" for transport errors and responses without a decodable message.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
