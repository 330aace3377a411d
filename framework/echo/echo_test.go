package ragechohandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ragclient "github.com/ragstack/ragclient-go"
	"github.com/ragstack/ragclient-go/apierror"
)

func upstreamError(status int, body string) error {
	se := apierror.FromResponse([]byte(body))
	return &ragclient.APIError{
		Op:             "Search",
		StatusCode:     status,
		Structured:     se,
		Classification: se.Classify(),
	}
}

func TestErrorHandlerRendersAPIError(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler()
	e.GET("/search", func(c echo.Context) error {
		return upstreamError(http.StatusServiceUnavailable,
			`{"error_code":"SYSTEM_SERVICE_UNAVAILABLE","message":"down","trace_id":"trace-1"}`)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body apierror.DisplayError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SYSTEM_SERVICE_UNAVAILABLE", body.Code)
	assert.Equal(t, "down", body.Message)
	assert.Equal(t, "trace-1", body.CorrelationID)
	assert.True(t, body.Retryable)
}

func TestErrorHandlerTransportFailureRendersBadGateway(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler()
	e.GET("/search", func(c echo.Context) error {
		se := apierror.FromTransportError(errors.New("dial tcp: connection refused"))
		return &ragclient.APIError{Op: "Search", Structured: se}
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestErrorHandlerFallback(t *testing.T) {
	var fallbackCalled bool
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(WithFallback(func(err error, c echo.Context) {
		fallbackCalled = true
		_ = c.NoContent(http.StatusTeapot)
	}))
	e.GET("/other", func(c echo.Context) error {
		return errors.New("unrelated failure")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))

	assert.True(t, fallbackCalled)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
