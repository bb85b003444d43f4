package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search path. Callers should match with errors.Is.
var (
	// ErrInvalidRequest indicates the request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidDateRange indicates the requested start date is after the
	// end date. Raised before any upstream call is made.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrUnauthorized indicates a missing or rejected bearer credential.
	ErrUnauthorized = errors.New("authentication required")

	// ErrUpstream is the base error for failures talking to the rental
	// platform. Wrapped by UpstreamError with operation context.
	ErrUpstream = errors.New("upstream request failed")
)

// UpstreamError represents a transport or GraphQL-level failure from the
// rental platform. It is fatal for the whole search: no partial results are
// returned for a failed resort, and the upstream message is surfaced
// verbatim to the caller.
type UpstreamError struct {
	// Op is the GraphQL operation that failed (e.g. "exploreList").
	Op string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrUpstream) match any UpstreamError.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// NewUpstreamError creates an UpstreamError for the given operation.
func NewUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}

// WrapInvalidRequest creates an error that wraps ErrInvalidRequest with
// a formatted message.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest checks if the error is a validation failure.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsInvalidDateRange checks if the error is a date-range ordering failure.
func IsInvalidDateRange(err error) bool {
	return errors.Is(err, ErrInvalidDateRange)
}

// IsUpstream checks if the error originated from the rental platform.
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
