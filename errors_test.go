package ragclient

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ragstack/ragclient-go/apierror"
)

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with code",
			err: newAPIError("Search", http.StatusUnauthorized, &apierror.StructuredError{
				Code:    "AUTH_TOKEN_EXPIRED",
				Message: "token expired",
			}, nil),
			want: "ragclient: Search: token expired (code=AUTH_TOKEN_EXPIRED, status=401)",
		},
		{
			name: "without code",
			err: newAPIError("Usage", http.StatusInternalServerError, &apierror.StructuredError{
				Message: "database exploded",
			}, nil),
			want: "ragclient: Usage: database exploded (status=500)",
		},
		{
			name: "nil structured error degrades to generic",
			err:  newAPIError("Health", 0, nil, errors.New("dial tcp: refused")),
			want: fmt.Sprintf("ragclient: Health: %s (status=0)", apierror.GenericFailureMessage),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAPIErrorClassificationDerivedOnce(t *testing.T) {
	err := newAPIError("Search", http.StatusServiceUnavailable, &apierror.StructuredError{
		Code:    apierror.CodeSystemServiceUnavailable,
		Message: "down",
	}, nil)

	assert.Equal(t, apierror.Classification{Retryable: true}, err.Classification)
	assert.Equal(t, err.Classification, err.Structured.Classify())
}

func TestAPIErrorDisplay(t *testing.T) {
	err := newAPIError("Search", http.StatusServiceUnavailable, &apierror.StructuredError{
		Code:          apierror.CodeSystemStorageFailure,
		Message:       "storage gone",
		CorrelationID: "trace-3",
	}, nil)

	d := err.Display()
	assert.Equal(t, apierror.CodeSystemStorageFailure, d.Code)
	assert.Equal(t, http.StatusServiceUnavailable, d.HTTPStatus)
	assert.True(t, d.Critical)
	assert.Equal(t, "trace-3", d.CorrelationID)
}

func TestInspectionHelpersOnForeignErrors(t *testing.T) {
	plain := errors.New("some other failure")

	assert.False(t, IsRetryable(plain))
	assert.False(t, IsCritical(plain))
	assert.False(t, NeedsReauth(plain))
	assert.Empty(t, ErrorCode(plain))
	assert.Empty(t, CorrelationID(plain))

	assert.False(t, IsRetryable(nil))
}

func TestInspectionHelpersThroughWrapping(t *testing.T) {
	apiErr := newAPIError("Retrieve", http.StatusTooManyRequests, &apierror.StructuredError{
		Code:    apierror.CodeRateLimitExceeded,
		Message: "slow down",
	}, nil)
	wrapped := fmt.Errorf("fetching context: %w", apiErr)

	assert.True(t, IsRetryable(wrapped))
	assert.True(t, errors.Is(wrapped, ErrRemoteCall))
	assert.Equal(t, apierror.CodeRateLimitExceeded, ErrorCode(wrapped))
}

func TestInvalidResponseError(t *testing.T) {
	cause := errors.New("invalid character '<'")
	err := &InvalidResponseError{Op: "Health", Err: cause}

	assert.Contains(t, err.Error(), "Health")
	assert.ErrorIs(t, err, cause)
	assert.False(t, errors.Is(err, ErrRemoteCall))
}
