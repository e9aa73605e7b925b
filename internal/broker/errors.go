// Package broker wraps the external WhatsApp gateway behind a stable
// client contract. All retry policy, timeout enforcement and error
// mapping for that system lives here.
package broker

import "errors"

var (
	// ErrUnavailable means the gateway could not be reached at all.
	ErrUnavailable = errors.New("broker unavailable")
	// ErrBadGateway means the gateway answered with a non-2xx status.
	ErrBadGateway = errors.New("broker returned an error response")
	// ErrMisconfigured means the gateway rejected our credentials or
	// the request shape (401/400 family).
	ErrMisconfigured = errors.New("broker rejected the request")
)
