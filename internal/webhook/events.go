// Package webhook translates broker event payloads into the canonical
// internal events consumed by the orchestration core. The broker has
// shipped two envelope shapes over time; both normalize to the same
// three event kinds, and anything unrecognized becomes a no-op.
package webhook

import "errors"

// EventKind tags the normalized event union.
type EventKind string

const (
	KindQRUpdated        EventKind = "qrcode.updated"
	KindConnectionUpdate EventKind = "connection.update"
	KindMessageReceived  EventKind = "messages.upsert"
	// KindIgnored covers unknown events and messages filtered out by
	// the normalization rules (self-origin, groups, empty text).
	KindIgnored EventKind = "ignored"
)

// ErrMalformedMessage is returned for a messages.upsert payload missing
// both the message key and the message body.
var ErrMalformedMessage = errors.New("message payload missing key and body")

// QRUpdated carries a fresh pairing QR code.
type QRUpdated struct {
	Base64 string
}

// ConnectionUpdate carries a broker connection state change.
type ConnectionUpdate struct {
	State string
}

// MessageReceived is one inbound text after filtering.
type MessageReceived struct {
	MessageID string
	RemoteJID string
	SenderJID string
	PushName  string
	Text      string
}

// Event is the tagged union produced by Normalize. Exactly one of the
// payload pointers matching Kind is non-nil.
type Event struct {
	Kind       EventKind
	Instance   string
	QR         *QRUpdated
	Connection *ConnectionUpdate
	Message    *MessageReceived
}
