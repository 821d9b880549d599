package twitter

import (
	"errors"
	"fmt"
)

// ErrNotConfigured means the bearer token is missing. It short-circuits all
// API calls without touching the network.
var ErrNotConfigured = errors.New("api bearer token not configured")

// ErrRateLimited means the API returned 429. The limiter has already been
// tripped; callers should skip and retry after the cooldown rather than
// treating this as a hard failure.
var ErrRateLimited = errors.New("api rate limited")

// APIError is a non-2xx response other than 429.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Body)
}

// TransportError wraps network-level failures (timeout, DNS, connection
// reset).
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("api request failed: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
