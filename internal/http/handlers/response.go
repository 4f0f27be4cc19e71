// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the standard response utilities used across all endpoints.
// Two envelope shapes coexist:
//
//   - ErrorResponse is the gateway's own structured error (admin endpoints,
//     router fallbacks, middleware): {request_id, code, message}.
//   - The RC verification endpoints answer with the upstream provider's
//     envelope shape {status, message, statuscode} so existing clients of the
//     proxied API keep working unchanged; failEnvelope() produces those.
//
// `fail()` centralizes error logging and formatting, ensuring 5xx responses
// are logged with request context for observability.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rtolink/go-rc-gateway/internal/http/middleware"
	"github.com/rtolink/go-rc-gateway/internal/upstream"
)

// ErrorResponse is the standard error envelope returned by admin endpoints
// and router fallbacks.
//
// Fields:
//   - RequestID: optional correlation ID, echoed from X-Request-ID, used to
//     correlate server logs with client-side errors.
//   - Code: a stable, machine-readable string (see errors.go constants).
//   - Message: a human-readable error description, safe for display to users.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"resource not found"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	// Log 5xx (server-side) with request-scoped logger
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail().
//
// External packages (e.g., router setup) should call Fail to return
// consistent error envelopes without directly depending on unexported helpers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failEnvelope aborts the request with a provider-shaped failure envelope.
// The verification endpoints use this so error bodies match what the proxied
// API's clients already parse: {"status":false,"message":...,"statuscode":...}.
func failEnvelope(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, upstream.Envelope{
		Status:     false,
		Message:    msg,
		StatusCode: status,
	})
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
