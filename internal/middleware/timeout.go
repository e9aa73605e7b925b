package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Timeout bounds each request. A handler that misses the deadline gets
// its context canceled and the client a 408; the handler goroutine is
// left to notice the cancellation on its own.
func Timeout(timeout time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})
			go func() {
				next.ServeHTTP(w, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					renderError(w, r, http.StatusRequestTimeout, ErrorCodeRequestTimeout, errorMessageRequestTimeout)
				}
			}
		})
	}
}
