package service

import (
	"time"

	"github.com/zapagenda/zap-confirm/internal/api"
	"github.com/zapagenda/zap-confirm/internal/models"
)

// ConnectResult is the outcome of a session connect call.
type ConnectResult struct {
	SessionID  int64
	Status     models.SessionStatus
	QRCode     string
	WebhookURL string
	Token      string
}

// SessionStatusResult merges local and broker session state. Err is set
// when the broker could not be queried and the status is local-only.
type SessionStatusResult struct {
	SessionID   int64
	Status      models.SessionStatus
	PhoneNumber string
	ProfileName string
	ConnectedAt *time.Time
	Err         string
}

// ConfirmationResult reports what one inbound reply produced. The
// status update and the outbound send are independent steps; each flag
// stands on its own so partial success is observable.
type ConfirmationResult struct {
	Action        ReplyAction
	AppointmentID int64
	StatusUpdated bool
	MessageSent   bool
	// Detail carries the non-fatal reason when a step was skipped or
	// failed (missing template, send failure, duplicate delivery).
	Detail string
}

// BatchResult summarizes one delivery batch run.
type BatchResult struct {
	Processed int
	Failed    int
}

// HealthStatus is the aggregated component health.
type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	SchedulerStatus      api.HealthResponseSchedulerStatus     `json:"scheduler_status"`
	DatabaseStatus       api.HealthResponseDatabaseStatus      `json:"database_status"`
	RedisStatus          api.HealthResponseRedisStatus         `json:"redis_status"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
}
