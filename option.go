package ragclient

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/ragstack/ragclient-go/auth"
)

// Option configures the Client.
// Returns error for validation failures.
type Option func(*Client) error

// Sentinel errors for configuration validation.
var (
	ErrBaseURLRequired  = errors.New("base URL is required (use WithBaseURL)")
	ErrBaseURLInvalid   = errors.New("base URL is not a valid absolute URL")
	ErrHTTPClientNil    = errors.New("http client cannot be nil")
	ErrAuthenticatorNil = errors.New("authenticator cannot be nil")
	ErrLoggerNil        = errors.New("logger cannot be nil")
	ErrTracerNil        = errors.New("tracer cannot be nil")
	ErrMetricsNil       = errors.New("metrics cannot be nil")
	ErrUserAgentEmpty   = errors.New("user agent cannot be empty")
)

// WithBaseURL sets the service's base URL (REQUIRED).
func WithBaseURL(rawURL string) Option {
	return func(c *Client) error {
		u, err := url.Parse(rawURL)
		if err != nil || !u.IsAbs() || u.Host == "" {
			return ErrBaseURLInvalid
		}
		c.baseURL = u
		return nil
	}
}

// WithAuthenticator sets the token authenticator whose headers are
// attached to every outbound request. Without one the client sends
// unauthenticated requests, which the service rejects for all but the
// health endpoint.
func WithAuthenticator(a *auth.Authenticator) Option {
	return func(c *Client) error {
		if a == nil {
			return ErrAuthenticatorNil
		}
		c.authenticator = a
		return nil
	}
}

// WithHTTPClient replaces the default HTTP client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return ErrHTTPClientNil
		}
		c.httpClient = hc
		return nil
	}
}

// WithLogger sets an optional logger for the client.
//
// Default: no logging.
func WithLogger(logger Logger) Option {
	return func(c *Client) error {
		if logger == nil {
			return ErrLoggerNil
		}
		c.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used to start a span per outbound call.
//
// Default: NoopTracer.
func WithTracer(tracer Tracer) Option {
	return func(c *Client) error {
		if tracer == nil {
			return ErrTracerNil
		}
		c.tracer = tracer
		return nil
	}
}

// WithMetrics sets the metrics recorder.
//
// Default: NoopMetrics.
func WithMetrics(metrics Metrics) Option {
	return func(c *Client) error {
		if metrics == nil {
			return ErrMetricsNil
		}
		c.metrics = metrics
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
//
// Default: "ragclient-go/" + Version.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if ua == "" {
			return ErrUserAgentEmpty
		}
		c.userAgent = ua
		return nil
	}
}
