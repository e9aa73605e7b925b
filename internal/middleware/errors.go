package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/zapagenda/zap-confirm/internal/api"
)

// Error codes shared by the middleware chain and the handlers.
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
)

const (
	errorMessageInternal          = "An internal error occurred"
	errorMessageRateLimitExceeded = "Too many requests"
	errorMessageRequestTimeout    = "Request timeout"
)

// renderError writes the same JSON error envelope the handlers use, so
// a middleware rejection looks no different to API clients.
func renderError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	now := time.Now()
	render.Status(r, status)
	render.JSON(w, r, api.ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: &now,
	})
}
