// Package ragginhandler renders classified RAG client errors as gin
// responses, mirroring the echo handler for services built on gin.
package ragginhandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	ragclient "github.com/ragstack/ragclient-go"
)

// ErrorRenderer returns middleware that, after the handler chain has
// run, renders the first *ragclient.APIError attached to the context
// as a JSON envelope built from the error's display record. Other
// attached errors render as a plain 500 envelope.
func ErrorRenderer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		for _, ginErr := range c.Errors {
			var apiErr *ragclient.APIError
			if errors.As(ginErr.Err, &apiErr) {
				c.JSON(ResponseStatus(apiErr), apiErr.Display())
				return
			}
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message": c.Errors[0].Error(),
		})
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
