// Package grpc maps classified RAG client errors to gRPC status
// errors, for services that expose the RAG service's data over gRPC.
package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	ragclient "github.com/ragstack/ragclient-go"
	"github.com/ragstack/ragclient-go/apierror"
	"github.com/ragstack/ragclient-go/auth"
)

// StatusFromError converts an error returned by the RAG client into a
// gRPC status error. The classification triple drives the mapping, so
// new service codes pick up sensible statuses as soon as the taxonomy
// knows them.
func StatusFromError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *ragclient.APIError
	if errors.As(err, &apiErr) {
		return mapAPIError(apiErr)
	}

	if errors.Is(err, auth.ErrAuthentication) {
		return status.Error(codes.Unauthenticated, "invalid or malformed token")
	}

	var invalidResp *ragclient.InvalidResponseError
	if errors.As(err, &invalidResp) {
		return status.Error(codes.Internal, "upstream returned an invalid response")
	}

	return status.Error(codes.Unknown, err.Error())
}

func mapAPIError(apiErr *ragclient.APIError) error {
	msg := apiErr.Structured.Message

	// Classification first: it is the stable contract.
	switch {
	case apiErr.Classification.NeedsReauth:
		return status.Error(codes.Unauthenticated, msg)
	case apiErr.Classification.Critical:
		return status.Error(codes.Internal, msg)
	case apiErr.Classification.Retryable:
		return status.Error(codes.Unavailable, msg)
	}

	// A few unclassified codes still have obvious statuses.
	switch apiErr.Structured.Code {
	case apierror.CodeResourceNotFound:
		return status.Error(codes.NotFound, msg)
	case apierror.CodeResourceConflict:
		return status.Error(codes.AlreadyExists, msg)
	case apierror.CodeResourceQuotaExceeded:
		return status.Error(codes.ResourceExhausted, msg)
	case apierror.CodeAuthInsufficientScope, apierror.CodeAuthConfidentiality, apierror.CodeAuthOrgMismatch:
		return status.Error(codes.PermissionDenied, msg)
	case apierror.CodeValidationFailed, apierror.CodeValidationFieldInvalid, apierror.CodeValidationFieldMissing:
		return status.Error(codes.InvalidArgument, msg)
	}

	return status.Error(codes.Unknown, msg)
}
