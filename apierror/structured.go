package apierror

import (
	"encoding/json"
	"strings"
)

// GenericFailureMessage is used when a failed call carries no usable
// message at all: an empty body and no transport error text.
const GenericFailureMessage = "remote call failed"

// StructuredError is the normalized payload of a failed remote call.
// It is constructed once per failure and never mutated afterwards.
// Code is empty for malformed or legacy responses and for pure
// transport failures.
type StructuredError struct {
	Code          string
	Message       string
	Details       map[string]any
	Field         string
	Timestamp     string
	CorrelationID string
}

// errorEnvelope is the modern wire shape of the service's error body.
// Every field except message is optional.
type errorEnvelope struct {
	ErrorCode string         `json:"error_code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details"`
	Field     string         `json:"field"`
	Timestamp string         `json:"timestamp"`
	TraceID   string         `json:"trace_id"`
}

// legacyEnvelope is the pre-envelope error shape: a single free-text
// field under one of a few historical names.
type legacyEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// FromResponse builds a StructuredError from a non-2xx response body.
// It never fails: an unparseable or unrecognized body degrades to a
// best-effort message-only error rather than surfacing a secondary
// failure. When the body carries both the modern envelope and legacy
// free-text fields, the modern shape wins entirely.
func FromResponse(body []byte) *StructuredError {
	raw := strings.TrimSpace(string(body))

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.ErrorCode != "" {
		msg := env.Message
		if msg == "" {
			msg = GenericFailureMessage
		}
		return &StructuredError{
			Code:          env.ErrorCode,
			Message:       msg,
			Details:       env.Details,
			Field:         env.Field,
			Timestamp:     env.Timestamp,
			CorrelationID: env.TraceID,
		}
	}

	var legacy legacyEnvelope
	if err := json.Unmarshal(body, &legacy); err == nil {
		// First present key wins: error, message, detail.
		for _, msg := range []string{legacy.Error, legacy.Message, legacy.Detail} {
			if msg != "" {
				return &StructuredError{Message: msg}
			}
		}
	}

	if raw == "" {
		raw = GenericFailureMessage
	}
	return &StructuredError{Message: raw}
}

// FromTransportError builds a StructuredError for a failure that never
// produced a response: timeouts, DNS failures, refused connections.
func FromTransportError(err error) *StructuredError {
	msg := GenericFailureMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &StructuredError{Message: msg}
}

// Classify classifies the error's own code. Shorthand for
// Classify(se.Code) on a possibly message-only error.
func (se *StructuredError) Classify() Classification {
	if se == nil {
		return Classification{}
	}
	return Classify(se.Code)
}
