package apierror

// DisplayError is a caller-facing, serializable view of a classified
// failure. It bundles the normalized payload, the HTTP status and the
// classification triple so downstream code (logs, front-ends) never
// has to re-derive classification.
type DisplayError struct {
	Code          string         `json:"code,omitempty"`
	Message       string         `json:"message"`
	Details       map[string]any `json:"details,omitempty"`
	Field         string         `json:"field,omitempty"`
	Timestamp     string         `json:"timestamp,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
	HTTPStatus    int            `json:"http_status,omitempty"`
	Retryable     bool           `json:"retryable"`
	Critical      bool           `json:"critical"`
	NeedsReauth   bool           `json:"needs_reauth"`
}

// Display builds a DisplayError from a structured error and the HTTP
// status of the failed call. A nil se yields a generic record so the
// result is always safe to serialize.
func Display(se *StructuredError, httpStatus int) DisplayError {
	if se == nil {
		se = &StructuredError{Message: GenericFailureMessage}
	}
	c := Classify(se.Code)
	return DisplayError{
		Code:          se.Code,
		Message:       se.Message,
		Details:       se.Details,
		Field:         se.Field,
		Timestamp:     se.Timestamp,
		CorrelationID: se.CorrelationID,
		HTTPStatus:    httpStatus,
		Retryable:     c.Retryable,
		Critical:      c.Critical,
		NeedsReauth:   c.NeedsReauth,
	}
}
