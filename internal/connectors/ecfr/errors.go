package ecfr

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError indicates the search API rejected the request for rate
// limiting, with the earliest safe retry time when the server sent one.
type RateLimitError struct {
	RetryAt time.Time
}

func (e *RateLimitError) Error() string {
	if e.RetryAt.IsZero() {
		return "ecfr: rate limit exceeded"
	}
	return fmt.Sprintf("ecfr: rate limit exceeded, retry at %s", e.RetryAt.Format(time.RFC3339))
}

// APIError represents a non-success response from the search API.
type APIError struct {
	StatusCode int
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ecfr: API error %d (URL: %s)", e.StatusCode, e.URL)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}
