// Package ragechohandler renders classified RAG client errors as echo
// responses. Services that proxy the RAG service can install the
// error handler and forward a failure's code, message and
// classification to their own callers without re-deriving any of it.
package ragechohandler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	ragclient "github.com/ragstack/ragclient-go"
)

// Option configures the error handler.
type Option func(*config)

type config struct {
	fallback echo.HTTPErrorHandler
}

// WithFallback sets the handler used for errors that are not RAG
// client errors.
//
// Default: echo's own default error handler.
func WithFallback(h echo.HTTPErrorHandler) Option {
	return func(c *config) {
		c.fallback = h
	}
}

// NewErrorHandler returns an echo.HTTPErrorHandler that renders
// *ragclient.APIError values as JSON envelopes built from the error's
// display record. Other errors go to the fallback handler.
func NewErrorHandler(opts ...Option) echo.HTTPErrorHandler {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apiErr *ragclient.APIError
		if errors.As(err, &apiErr) {
			_ = c.JSON(ResponseStatus(apiErr), apiErr.Display())
			return
		}

		if cfg.fallback != nil {
			cfg.fallback(err, c)
			return
		}
		c.Echo().DefaultHTTPErrorHandler(err, c)
	}
}

// ResponseStatus picks the status to relay for a failed upstream call.
// The upstream status passes through when present; a pure transport
// failure renders as 502.
func ResponseStatus(apiErr *ragclient.APIError) int {
	if apiErr.StatusCode > 0 {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}
