/*
Package apierror normalizes and classifies error responses from the RAG
document service.

A failed call produces a StructuredError: the service's error envelope
(code, message, details, field, timestamp, correlation id) parsed on a
best-effort basis. Extraction never fails; a malformed or absent body
degrades to a message-only error so the original transport failure is
the only error a caller ever sees.

Classification is a pure lookup of the stable error code against three
static sets, yielding a Classification triple:

	c := apierror.Classify("SYSTEM_SERVICE_UNAVAILABLE")
	if c.Retryable {
	    // safe to reissue the request
	}

The package only labels failures. Retry loops, re-authentication flows
and escalation live with the caller.
*/
package apierror
