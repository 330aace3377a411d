package ragclient

import (
	"errors"
	"fmt"

	"github.com/ragstack/ragclient-go/apierror"
)

// ErrRemoteCall is the sentinel every failed outbound call matches via
// errors.Is, regardless of whether the service answered or the
// transport failed outright.
var ErrRemoteCall = errors.New("remote call failed")

// APIError is returned for any failed outbound call. It carries the
// HTTP status (0 when the transport failed before a response), the
// normalized error payload extracted from the response body, and the
// classification triple so call sites can branch without string
// matching.
type APIError struct {
	// Op names the failed operation, e.g. "IngestDocument".
	Op string

	// StatusCode is the HTTP status of the response, or 0 when the
	// failure produced no response at all.
	StatusCode int

	// Structured is the normalized error payload. Never nil.
	Structured *apierror.StructuredError

	// Classification labels the failure for retry and escalation
	// decisions. Derived from Structured.Code at construction time.
	Classification apierror.Classification

	// Err is the underlying transport error, if any.
	Err error
}

// Error returns a string representation of the error.
func (e *APIError) Error() string {
	if e.Structured != nil && e.Structured.Code != "" {
		return fmt.Sprintf("ragclient: %s: %s (code=%s, status=%d)",
			e.Op, e.Structured.Message, e.Structured.Code, e.StatusCode)
	}
	if e.Structured != nil {
		return fmt.Sprintf("ragclient: %s: %s (status=%d)", e.Op, e.Structured.Message, e.StatusCode)
	}
	return fmt.Sprintf("ragclient: %s failed (status=%d)", e.Op, e.StatusCode)
}

// Is allows the error to support equality to ErrRemoteCall.
func (e *APIError) Is(target error) bool {
	return target == ErrRemoteCall
}

// Unwrap exposes the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Display returns the caller-facing serializable view of the failure.
func (e *APIError) Display() apierror.DisplayError {
	return apierror.Display(e.Structured, e.StatusCode)
}

// newAPIError derives the classification once so every inspection of
// the error sees the same triple.
func newAPIError(op string, status int, se *apierror.StructuredError, cause error) *APIError {
	if se == nil {
		se = &apierror.StructuredError{Message: apierror.GenericFailureMessage}
	}
	return &APIError{
		Op:             op,
		StatusCode:     status,
		Structured:     se,
		Classification: se.Classify(),
		Err:            cause,
	}
}

// InvalidResponseError is returned when the transport succeeded (2xx)
// but the success body could not be decoded. It is distinct from
// APIError, which only covers failure paths.
type InvalidResponseError struct {
	Op  string
	Err error
}

// Error returns a string representation of the error.
func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("ragclient: %s: invalid response body: %s", e.Op, e.Err)
}

// Unwrap exposes the decode error.
func (e *InvalidResponseError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a failed call the service labeled
// safe to reissue. Unclassified failures are never retryable.
func IsRetryable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Classification.Retryable
}

// IsCritical reports whether err is a failed call that should be
// escalated rather than handled silently.
func IsCritical(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Classification.Critical
}

// NeedsReauth reports whether err indicates the current token is no
// longer usable and a fresh one must be obtained.
func NeedsReauth(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Classification.NeedsReauth
}

// ErrorCode returns the stable error code carried by err, or an empty
// string for unclassified failures and non-API errors.
func ErrorCode(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Structured != nil {
		return apiErr.Structured.Code
	}
	return ""
}

// CorrelationID returns the correlation id carried by err for
// cross-system tracing, or an empty string when absent.
func CorrelationID(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Structured != nil {
		return apiErr.Structured.CorrelationID
	}
	return ""
}
