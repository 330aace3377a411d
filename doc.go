/*
Package ragclient is a Go client for the RAG document-retrieval and
indexing service.

The client authenticates every request with a bearer token and turns
the service's error responses into typed, classified errors, so call
sites can decide whether to retry, re-authenticate or escalate without
matching on message text.

# Quick Start

	import (
	    "github.com/ragstack/ragclient-go"
	    "github.com/ragstack/ragclient-go/auth"
	)

	func main() {
	    authenticator, err := auth.New(os.Getenv("RAG_TOKEN"))
	    if err != nil {
	        log.Fatal(err)
	    }

	    client, err := ragclient.NewClient(
	        ragclient.WithBaseURL("https://rag.example.com"),
	        ragclient.WithAuthenticator(authenticator),
	    )
	    if err != nil {
	        log.Fatal(err)
	    }

	    result, err := client.Search(ctx, ragclient.SearchRequest{Query: "onboarding policy"})
	    if err != nil {
	        switch {
	        case ragclient.NeedsReauth(err):
	            // obtain a fresh token and rebuild the client
	        case ragclient.IsRetryable(err):
	            // safe to reissue the request
	        case ragclient.IsCritical(err):
	            // escalate; the service reported damage on its side
	        }
	        log.Fatal(err)
	    }
	    _ = result
	}

# Error Handling

Every failed call returns an *APIError carrying the HTTP status, the
normalized payload from the service's error envelope (stable code,
message, details, correlation id) and a classification triple derived
from the code alone. errors.Is(err, ragclient.ErrRemoteCall) matches
any failed call; the helpers IsRetryable, IsCritical, NeedsReauth,
ErrorCode and CorrelationID inspect specifics. The classification only
labels failures: retry loops and backoff are deliberately left to the
caller.

# Observability

WithLogger, WithTracer and WithMetrics plug in optional logging
(adapters for logrus, zap and zerolog are provided), OpenTelemetry
tracing and Prometheus metrics. All are off by default.

# Subpackages

  - auth: bearer token lifecycle (structural checks, local claim
    queries, test-token issuance)
  - apierror: error envelope extraction and the code taxonomy
  - framework/echo, framework/gin: render classified errors in HTTP
    handlers
  - integrations/grpc: map classified errors to gRPC status codes
*/
package ragclient
