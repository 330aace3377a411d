package apierror

// Classification labels a failed call along three independent axes.
// It carries no policy: whether to actually retry, re-authenticate or
// page someone is the caller's decision.
type Classification struct {
	// Retryable means the same request may be safely reissued.
	Retryable bool

	// Critical means the failure indicates service-side damage or data
	// loss and should be escalated rather than handled silently.
	Critical bool

	// NeedsReauth means the current token is no longer usable and a
	// fresh one must be obtained before any further calls.
	NeedsReauth bool
}

// retryableCodes are failures expected to clear on their own.
var retryableCodes = map[string]struct{}{
	CodeRateLimitExceeded:           {},
	CodeSystemServiceUnavailable:    {},
	CodeSystemTimeout:               {},
	CodeIndexRebuildInProgress:      {},
	CodeEmbeddingServiceUnavailable: {},
}

// criticalCodes are failures that indicate service-side damage.
var criticalCodes = map[string]struct{}{
	CodeSystemInternalError:  {},
	CodeSystemStorageFailure: {},
	CodeIndexCorrupted:       {},
}

// authRefreshCodes are failures cured only by a new token.
var authRefreshCodes = map[string]struct{}{
	CodeAuthTokenExpired: {},
	CodeAuthTokenInvalid: {},
	CodeAuthTokenRevoked: {},
}

// Classify looks up code in the static taxonomy. It is a pure function
// of the code alone: message text and HTTP status play no part. An
// empty or unrecognized code classifies to the zero Classification, so
// unclassified errors are never assumed retryable or critical.
func Classify(code string) Classification {
	if code == "" {
		return Classification{}
	}

	var c Classification
	_, c.Retryable = retryableCodes[code]
	_, c.Critical = criticalCodes[code]
	_, c.NeedsReauth = authRefreshCodes[code]
	return c
}
