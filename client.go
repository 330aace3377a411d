package ragclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ragstack/ragclient-go/apierror"
	"github.com/ragstack/ragclient-go/auth"
)

// Version is reported in the default User-Agent header.
const Version = "1.0.0"

const defaultTimeout = 30 * time.Second

// Client talks to the RAG document service over HTTP. It attaches the
// authenticator's headers to every request and converts any failed
// call into an *APIError carrying the normalized payload and its
// classification.
//
// A Client is immutable after construction and safe for concurrent
// use.
type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	authenticator *auth.Authenticator
	logger        Logger
	tracer        Tracer
	metrics       Metrics
	userAgent     string
}

// NewClient constructs a Client with the supplied options.
//
// Example:
//
//	authenticator, err := auth.New(token)
//	if err != nil {
//	    return err
//	}
//	client, err := ragclient.NewClient(
//	    ragclient.WithBaseURL("https://rag.example.com"),
//	    ragclient.WithAuthenticator(authenticator),
//	)
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}

	if c.baseURL == nil {
		return nil, ErrBaseURLRequired
	}

	c.applyDefaults()
	return c, nil
}

// applyDefaults sets default values for optional fields.
func (c *Client) applyDefaults() {
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if c.tracer == nil {
		c.tracer = &NoopTracer{}
	}
	if c.metrics == nil {
		c.metrics = &NoopMetrics{}
	}
	if c.userAgent == "" {
		c.userAgent = "ragclient-go/" + Version
	}
}

// Authenticator returns the configured authenticator, or nil.
func (c *Client) Authenticator() *auth.Authenticator {
	return c.authenticator
}

// newRequest builds an outbound request: JSON body, content headers,
// a generated X-Request-ID, and the authenticator's headers.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.authenticator != nil {
		for k, v := range c.authenticator.Headers() {
			req.Header.Set(k, v)
		}
	}
	return req, nil
}

// do performs one outbound call. On a non-2xx response it extracts the
// structured error from the body and returns an *APIError; on a pure
// transport failure it returns an *APIError with status 0. A 2xx
// response with an undecodable body yields an *InvalidResponseError.
// Extraction itself never fails; only the original failure, enriched,
// is ever returned.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	ctx, span := c.tracer.StartSpan(ctx, "ragclient."+op)
	defer span.Finish()
	span.SetTag("http.method", method)
	span.SetTag("http.path", path)

	start := time.Now()
	defer func() {
		c.metrics.ObserveHistogram("ragclient_request_duration_seconds",
			time.Since(start).Seconds(), map[string]string{"operation": op})
	}()

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	if c.logger != nil {
		c.logger.Debugf("ragclient: %s %s %s", op, method, path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		se := apierror.FromTransportError(err)
		span.SetTag("error", true)
		c.countError(op, se.Code)
		if c.logger != nil {
			c.logger.Errorf("ragclient: %s transport failure: %s", op, se.Message)
		}
		return newAPIError(op, 0, se, err)
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)
	span.SetTag("http.status_code", strconv.Itoa(resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		se := apierror.FromResponse(respBody)
		span.SetTag("error", true)
		if se.Code != "" {
			span.SetTag("error_code", se.Code)
		}
		if se.CorrelationID != "" {
			span.SetTag("correlation_id", se.CorrelationID)
		}
		c.countError(op, se.Code)
		if c.logger != nil {
			c.logger.Errorf("ragclient: %s failed: %s (code=%s, status=%d, correlation_id=%s)",
				op, se.Message, se.Code, resp.StatusCode, se.CorrelationID)
		}
		return newAPIError(op, resp.StatusCode, se, nil)
	}

	c.metrics.IncCounter("ragclient_requests_total", map[string]string{"operation": op})

	if out == nil {
		return nil
	}
	if readErr != nil {
		return &InvalidResponseError{Op: op, Err: readErr}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		if c.logger != nil {
			c.logger.Errorf("ragclient: %s returned an undecodable body: %s", op, err)
		}
		return &InvalidResponseError{Op: op, Err: err}
	}
	return nil
}

func (c *Client) countError(op, code string) {
	c.metrics.IncCounter("ragclient_request_errors_total", map[string]string{
		"operation": op,
		"code":      code,
	})
}

// validateRequest runs a request DTO's validation and wraps failures
// so they are distinguishable from remote failures.
func validateRequest(v interface{ Validate() error }) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}
