package jobsearch

import (
	"errors"
	"fmt"
)

// TransportError is the single failure kind surfaced by the gateway. It covers
// network failures, non-success responses and malformed bodies alike.
type TransportError struct {
	Op     string // gateway operation, e.g. "search jobs"
	Path   string
	Status int // HTTP status when a response arrived; zero otherwise
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: api %s returned status %d", e.Op, e.Path, e.Status)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: api %s failed", e.Op, e.Path)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err wraps a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
