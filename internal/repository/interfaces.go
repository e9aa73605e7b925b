package repository

import (
	"errors"
	"time"

	"github.com/zapagenda/zap-confirm/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	Tenant() TenantRepository
	Session() SessionRepository
	Appointment() AppointmentRepository
	Template() TemplateRepository
	Queue() QueueRepository
	MessageLog() MessageLogRepository
}

// TenantRepository interface defines tenant operations.
type TenantRepository interface {
	GetByID(id int64) (*models.Tenant, error)
	// Ensure inserts the tenant with the given external id if it does
	// not exist yet and returns it either way.
	Ensure(id int64) (*models.Tenant, error)
}

// SessionRepository interface defines WhatsApp session operations.
type SessionRepository interface {
	GetByTenantID(tenantID int64) (*models.Session, error)
	GetByName(name string) (*models.Session, error)
	// Upsert inserts or updates the session keyed by its derived name
	// and returns the stored row.
	Upsert(session *models.Session) (*models.Session, error)
	UpdateStatus(id int64, status models.SessionStatus) error
	UpdateQR(id int64, qrCode, token string) error
	UpdateToken(id int64, token string) error
	// UpdateConnected marks the session connected, capturing the remote
	// phone and profile and clearing the QR payload.
	UpdateConnected(id int64, phoneNumber, profileName string) error
	// UpdateDisconnected resets the session to disconnected, clearing
	// phone, profile, QR and token.
	UpdateDisconnected(id int64) error
}

// AppointmentRepository interface defines scheduling-system operations.
type AppointmentRepository interface {
	GetByID(id int64) (*models.Appointment, error)
	// FindPendingBySuffix returns the earliest non-terminal appointment
	// for the tenant whose patient phone matches the 8-digit suffix,
	// with date >= since. Returns ErrNotFound when nothing matches.
	FindPendingBySuffix(tenantID int64, suffix string, since time.Time) (*models.PendingAppointment, error)
	// UpdateStatusIfPending sets the legacy status code only while the
	// appointment is still non-terminal; reports whether a row changed.
	UpdateStatusIfPending(id int64, status models.AppointmentStatus) (bool, error)
	SetWhatsAppConfirmed(id int64) error
	GetPatient(id int64) (*models.Patient, error)
}

// TemplateRepository interface defines message template operations.
type TemplateRepository interface {
	GetByID(id int64) (*models.MessageTemplate, error)
	// GetActiveByType returns the most recently created active template
	// of the given type, or ErrNotFound.
	GetActiveByType(tenantID int64, templateType string) (*models.MessageTemplate, error)
}

// QueueRepository interface defines delivery queue operations.
type QueueRepository interface {
	Enqueue(appointmentID, tenantID, templateID int64) (*models.QueueItem, error)
	// OldestWaiting returns the oldest waiting item for an appointment,
	// or ErrNotFound.
	OldestWaiting(appointmentID int64) (*models.QueueItem, error)
	// WaitingAppointmentIDs returns up to limit distinct appointment ids
	// that have waiting items, oldest first.
	WaitingAppointmentIDs(limit int) ([]int64, error)
	// MarkSent and MarkError transition only out of waiting; they report
	// whether the transition happened so repeat attempts are no-ops.
	MarkSent(id int64) (bool, error)
	MarkError(id int64, errorMsg string) (bool, error)
	// CancelWaiting flips any waiting item for the appointment to
	// cancelled; a no-op when none is waiting.
	CancelWaiting(appointmentID int64) error
}

// MessageLogRepository interface defines audit log operations. The log
// is append-only.
type MessageLogRepository interface {
	Append(entry *models.MessageLog) error
	ListByTenant(tenantID int64, offset, limit int) ([]*models.MessageLog, error)
	CountByTenant(tenantID int64) (int64, error)
}
