// Package models defines data structures used throughout the application.
package models

// SessionStatus is the lifecycle state of a tenant's WhatsApp session.
type SessionStatus string

const (
	SessionStatusConnecting   SessionStatus = "connecting"
	SessionStatusConnected    SessionStatus = "connected"
	SessionStatusDisconnected SessionStatus = "disconnected"
	SessionStatusError        SessionStatus = "error"
)

// QueueItemStatus is the delivery state of an outbound queue item.
// Transitions are monotonic: waiting -> (sent | cancelled | error).
type QueueItemStatus string

const (
	QueueItemStatusWaiting   QueueItemStatus = "waiting"
	QueueItemStatusSent      QueueItemStatus = "sent"
	QueueItemStatusCancelled QueueItemStatus = "cancelled"
	QueueItemStatusError     QueueItemStatus = "error"
)

// MessageDirection tags a message log entry as inbound or outbound.
type MessageDirection string

const (
	MessageDirectionSent     MessageDirection = "sent"
	MessageDirectionReceived MessageDirection = "received"
)

// AppointmentStatus is the closed set of appointment states this workflow
// cares about. The scheduling system stores integer codes; the mapping to
// those legacy codes lives here and nowhere else.
type AppointmentStatus int

const (
	// AppointmentStatusPending covers every legacy code this workflow has
	// not acted on yet.
	AppointmentStatusPending AppointmentStatus = iota
	// AppointmentStatusConfirmed is legacy code 6: confirmed via WhatsApp.
	AppointmentStatusConfirmed
	// AppointmentStatusRescheduleRequested is legacy code 7: reschedule
	// requested via WhatsApp.
	AppointmentStatusRescheduleRequested
)

const (
	legacyCodeConfirmed           = 6
	legacyCodeRescheduleRequested = 7
)

// AppointmentStatusFromCode maps a legacy integer status code to the
// closed enumeration. Unknown codes are pending from this workflow's
// point of view.
func AppointmentStatusFromCode(code int) AppointmentStatus {
	switch code {
	case legacyCodeConfirmed:
		return AppointmentStatusConfirmed
	case legacyCodeRescheduleRequested:
		return AppointmentStatusRescheduleRequested
	default:
		return AppointmentStatusPending
	}
}

// LegacyCode returns the integer code persisted by the scheduling system.
// Pending has no single code and maps to zero.
func (s AppointmentStatus) LegacyCode() int {
	switch s {
	case AppointmentStatusConfirmed:
		return legacyCodeConfirmed
	case AppointmentStatusRescheduleRequested:
		return legacyCodeRescheduleRequested
	default:
		return 0
	}
}

// Terminal reports whether the appointment has already been actioned via
// WhatsApp. Replies for terminal appointments are ignored.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusConfirmed || s == AppointmentStatusRescheduleRequested
}
