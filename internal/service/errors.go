// Package service provides business logic implementation for the application.
package service

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotConnected = errors.New("session is not connected")
	ErrNoCredential        = errors.New("session has no broker credential")
	ErrTemplateNotFound    = errors.New("no active template for type")
	ErrMissingPhone        = errors.New("patient has no phone number")
	ErrNoWaitingItem       = errors.New("no waiting queue item for appointment")
	// ErrBatchInFlight is returned when a delivery batch is requested
	// while another one is still running. The caller skips; runs are
	// never queued or merged.
	ErrBatchInFlight = errors.New("delivery batch already in flight")
)
