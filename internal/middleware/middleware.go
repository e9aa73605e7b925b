// Package middleware assembles the HTTP middleware chain for the
// service: request ids, request logging, panic recovery, CORS, per-IP
// rate limiting and request timeouts.
package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config wires the chain from application configuration. A nil CORS
// disables cross-origin handling entirely.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RateLimit      rate.Limit
	RateLimitBurst int

	RequestTimeout time.Duration
}

// Chain builds the middleware stack. Logger and RequestID wrap
// everything, so every response carries an id and every request gets
// logged, including ones rejected further in.
func Chain(config *Config) func(http.Handler) http.Handler {
	rateLimiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst)

	return func(handler http.Handler) http.Handler {
		h := Timeout(config.RequestTimeout)(handler)
		h = rateLimiter.Middleware()(h)
		if config.CORS != nil {
			h = CORS(config.CORS)(h)
		}
		h = Recovery(config.Logger)(h)
		h = RequestID(h)
		h = Logger(config.Logger)(h)
		return h
	}
}
