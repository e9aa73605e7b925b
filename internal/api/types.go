// Package api defines the request and response types of the HTTP
// surface.
package api

import "time"

// ErrorResponse is the structured failure envelope every endpoint uses.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// ConnectResponse is the result of a session connect call.
type ConnectResponse struct {
	SessionID  int64   `json:"session_id"`
	Status     string  `json:"status"`
	QRCode     *string `json:"qr_code,omitempty"`
	WebhookURL string  `json:"webhook_url"`
	Token      *string `json:"token,omitempty"`
}

// SessionStatusResponse merges local session state with the live broker
// view. Error is set when the broker could not be queried and the
// status is the local best effort.
type SessionStatusResponse struct {
	SessionID   int64      `json:"session_id"`
	Status      string     `json:"status"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	ProfileName *string    `json:"profile_name,omitempty"`
	ConnectedAt *time.Time `json:"connected_at,omitempty"`
	Error       *string    `json:"error,omitempty"`
}

// SendMessageOptions mirrors the broker's optional send knobs. Every
// field is independently omittable.
type SendMessageOptions struct {
	DelayMs     *int     `json:"delay_ms,omitempty"`
	LinkPreview *bool    `json:"link_preview,omitempty"`
	Mentions    []string `json:"mentions,omitempty"`
	QuotedID    *string  `json:"quoted_id,omitempty"`
}

// SendMessageRequest is a direct outbound send.
type SendMessageRequest struct {
	Phone   string              `json:"phone"`
	Text    string              `json:"text"`
	Options *SendMessageOptions `json:"options,omitempty"`
}

// SendMessageResponse carries the broker message id of a direct send.
type SendMessageResponse struct {
	MessageID string `json:"message_id"`
}

// WebhookResponse acknowledges an inbound broker event.
type WebhookResponse struct {
	Status string `json:"status"`
	Action string `json:"action,omitempty"`
}

// MessageLogEntry is one audit log row on the wire.
type MessageLogEntry struct {
	ID            int64      `json:"id"`
	AppointmentID *int64     `json:"appointment_id,omitempty"`
	Phone         string     `json:"phone"`
	Content       string     `json:"content"`
	Direction     string     `json:"direction"`
	Status        string     `json:"status"`
	BrokerMsgID   *string    `json:"broker_msg_id,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// Pagination describes a page of results.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// MessageListResponse is a paginated message log listing.
type MessageListResponse struct {
	Messages   []MessageLogEntry `json:"messages"`
	Pagination Pagination        `json:"pagination"`
}

// ProcessQueueRequest triggers a manual delivery batch.
type ProcessQueueRequest struct {
	Limit int `json:"limit"`
}

// ProcessQueueResponse reports the outcome of a manual batch.
type ProcessQueueResponse struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// SchedulerResponseStatus is the scheduler state after a control call.
type SchedulerResponseStatus string

const (
	SchedulerResponseStatusStarted SchedulerResponseStatus = "started"
	SchedulerResponseStatusStopped SchedulerResponseStatus = "stopped"
)

// SchedulerResponse is the result of a scheduler control call.
type SchedulerResponse struct {
	Status  SchedulerResponseStatus `json:"status"`
	Message string                  `json:"message"`
}

// Health response enumerations.
type (
	HealthResponseStatus              string
	HealthResponseSchedulerStatus     string
	HealthResponseDatabaseStatus      string
	HealthResponseRedisStatus         string
	HealthResponseCircuitBreakerState string
)

const (
	Healthy   HealthResponseStatus = "healthy"
	Degraded  HealthResponseStatus = "degraded"
	Unhealthy HealthResponseStatus = "unhealthy"

	HealthResponseSchedulerStatusRunning HealthResponseSchedulerStatus = "running"
	HealthResponseSchedulerStatusStopped HealthResponseSchedulerStatus = "stopped"

	HealthResponseDatabaseStatusConnected    HealthResponseDatabaseStatus = "connected"
	HealthResponseDatabaseStatusDisconnected HealthResponseDatabaseStatus = "disconnected"

	HealthResponseRedisStatusConnected    HealthResponseRedisStatus = "connected"
	HealthResponseRedisStatusDisconnected HealthResponseRedisStatus = "disconnected"

	Closed   HealthResponseCircuitBreakerState = "closed"
	HalfOpen HealthResponseCircuitBreakerState = "half_open"
	Open     HealthResponseCircuitBreakerState = "open"
)

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status               HealthResponseStatus               `json:"status"`
	Timestamp            time.Time                          `json:"timestamp"`
	SchedulerStatus      *HealthResponseSchedulerStatus     `json:"scheduler_status,omitempty"`
	DatabaseStatus       *HealthResponseDatabaseStatus      `json:"database_status,omitempty"`
	RedisStatus          *HealthResponseRedisStatus         `json:"redis_status,omitempty"`
	CircuitBreakerStatus *string                            `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  *HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
}
