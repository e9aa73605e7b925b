package service

import (
	"context"

	"github.com/zapagenda/zap-confirm/internal/api"
	"github.com/zapagenda/zap-confirm/internal/broker"
	"github.com/zapagenda/zap-confirm/internal/webhook"
)

// SessionService owns the per-tenant WhatsApp session lifecycle.
type SessionService interface {
	Connect(ctx context.Context, tenantID int64) (*ConnectResult, error)
	Disconnect(ctx context.Context, tenantID int64) error
	Status(ctx context.Context, tenantID int64) (*SessionStatusResult, error)
	HandleConnectionEvent(ctx context.Context, instanceName, state string) error
	HandleQRUpdate(ctx context.Context, instanceName, qrCode string) error
}

// ConfirmationService runs the inbound-reply workflow.
type ConfirmationService interface {
	HandleInbound(ctx context.Context, tenantID int64, msg *webhook.MessageReceived) (*ConfirmationResult, error)
}

// QueueService is the outbound delivery queue.
type QueueService interface {
	Enqueue(appointmentID, tenantID, templateID int64) error
	ProcessItem(ctx context.Context, appointmentID int64) error
	ProcessBatch(ctx context.Context, limit int) (*BatchResult, error)
	Cancel(appointmentID int64) error
}

// MessageService covers direct sends and the audit log listing.
type MessageService interface {
	SendDirect(ctx context.Context, tenantID int64, phoneNumber, text string, opts *broker.SendOptions) (string, error)
	ListMessages(tenantID int64, page, limit int) (*api.MessageListResponse, error)
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
}

type HealthService interface {
	GetHealth() *HealthStatus
}
