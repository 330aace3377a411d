package apierror

// Stable machine-readable error codes returned by the RAG service.
// These are part of the service's wire contract and must match the
// `error_code` field of its error envelope exactly.
const (
	// Authentication / authorization.
	CodeAuthTokenExpired      = "AUTH_TOKEN_EXPIRED"
	CodeAuthTokenInvalid      = "AUTH_TOKEN_INVALID"
	CodeAuthTokenRevoked      = "AUTH_TOKEN_REVOKED"
	CodeAuthInsufficientScope = "AUTH_INSUFFICIENT_SCOPE"
	CodeAuthConfidentiality   = "AUTH_CONFIDENTIALITY_DENIED"
	CodeAuthOrgMismatch       = "AUTH_ORGANIZATION_MISMATCH"

	// Request validation.
	CodeValidationFailed       = "VALIDATION_FAILED"
	CodeValidationFieldInvalid = "VALIDATION_FIELD_INVALID"
	CodeValidationFieldMissing = "VALIDATION_FIELD_MISSING"

	// Resources.
	CodeResourceNotFound      = "RESOURCE_NOT_FOUND"
	CodeResourceConflict      = "RESOURCE_CONFLICT"
	CodeResourceQuotaExceeded = "RESOURCE_QUOTA_EXCEEDED"

	// Throttling.
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"

	// Service-side failures.
	CodeSystemServiceUnavailable = "SYSTEM_SERVICE_UNAVAILABLE"
	CodeSystemTimeout            = "SYSTEM_TIMEOUT"
	CodeSystemInternalError      = "SYSTEM_INTERNAL_ERROR"
	CodeSystemStorageFailure     = "SYSTEM_STORAGE_FAILURE"

	// Document pipeline.
	CodeDocumentTooLarge          = "DOCUMENT_TOO_LARGE"
	CodeDocumentUnsupportedFormat = "DOCUMENT_UNSUPPORTED_FORMAT"
	CodeDocumentProcessingFailed  = "DOCUMENT_PROCESSING_FAILED"

	// Index and embedding backends.
	CodeIndexRebuildInProgress      = "INDEX_REBUILD_IN_PROGRESS"
	CodeIndexCorrupted              = "INDEX_CORRUPTED"
	CodeEmbeddingServiceUnavailable = "EMBEDDING_SERVICE_UNAVAILABLE"
)

// knownCodes enumerates every code the classifier recognizes. The
// category sets in taxonomy.go may only reference codes listed here.
var knownCodes = map[string]struct{}{
	CodeAuthTokenExpired:            {},
	CodeAuthTokenInvalid:            {},
	CodeAuthTokenRevoked:            {},
	CodeAuthInsufficientScope:       {},
	CodeAuthConfidentiality:         {},
	CodeAuthOrgMismatch:             {},
	CodeValidationFailed:            {},
	CodeValidationFieldInvalid:      {},
	CodeValidationFieldMissing:      {},
	CodeResourceNotFound:            {},
	CodeResourceConflict:            {},
	CodeResourceQuotaExceeded:       {},
	CodeRateLimitExceeded:           {},
	CodeSystemServiceUnavailable:    {},
	CodeSystemTimeout:               {},
	CodeSystemInternalError:         {},
	CodeSystemStorageFailure:        {},
	CodeDocumentTooLarge:            {},
	CodeDocumentUnsupportedFormat:   {},
	CodeDocumentProcessingFailed:    {},
	CodeIndexRebuildInProgress:      {},
	CodeIndexCorrupted:              {},
	CodeEmbeddingServiceUnavailable: {},
}

// IsKnown reports whether code is part of the recognized code
// enumeration. Unknown codes still classify (to all-false), they are
// just not part of the documented contract.
func IsKnown(code string) bool {
	_, ok := knownCodes[code]
	return ok
}

// KnownCodes returns the recognized code enumeration. The returned
// slice is a copy and safe to modify.
func KnownCodes() []string {
	codes := make([]string, 0, len(knownCodes))
	for code := range knownCodes {
		codes = append(codes, code)
	}
	return codes
}
