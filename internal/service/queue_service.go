package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/broker"
	"github.com/zapagenda/zap-confirm/internal/config"
	"github.com/zapagenda/zap-confirm/internal/models"
	"github.com/zapagenda/zap-confirm/internal/phone"
	"github.com/zapagenda/zap-confirm/internal/repository"
	"github.com/zapagenda/zap-confirm/internal/template"
)

type queueService struct {
	cfg    *config.Config
	repo   repository.Repository
	broker broker.Client
	logger *zap.Logger
	// inFlight guards the batch processor: a run that finds the flag
	// set is skipped outright, never queued or merged.
	inFlight atomic.Bool
}

func NewQueueService(
	cfg *config.Config,
	repo repository.Repository,
	brokerClient broker.Client,
	logger *zap.Logger,
) QueueService {
	return &queueService{
		cfg:    cfg,
		repo:   repo,
		broker: brokerClient,
		logger: logger,
	}
}

// Enqueue inserts a waiting item for the appointment. Sending happens
// in ProcessItem or the periodic batch.
func (s *queueService) Enqueue(appointmentID, tenantID, templateID int64) error {
	item, err := s.repo.Queue().Enqueue(appointmentID, tenantID, templateID)
	if err != nil {
		return fmt.Errorf("failed to enqueue delivery: %w", err)
	}

	s.logger.Info("Delivery enqueued",
		zap.Int64("queue_item_id", item.ID),
		zap.Int64("appointment_id", appointmentID),
		zap.Int64("template_id", templateID))

	return nil
}

// ProcessItem sends the oldest waiting item for an appointment. Any
// failure marks the item Error and propagates; there is no automatic
// retry, a re-delivery needs a fresh enqueue.
func (s *queueService) ProcessItem(ctx context.Context, appointmentID int64) error {
	item, err := s.repo.Queue().OldestWaiting(appointmentID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNoWaitingItem
	}
	if err != nil {
		return fmt.Errorf("failed to load waiting item: %w", err)
	}

	appointment, err := s.repo.Appointment().GetByID(item.AppointmentID)
	if err != nil {
		return s.failItem(item, fmt.Errorf("failed to load appointment: %w", err))
	}

	patient, err := s.repo.Appointment().GetPatient(appointment.PatientID)
	if err != nil {
		return s.failItem(item, fmt.Errorf("failed to load patient: %w", err))
	}

	rawPhone := patient.Phone1.String
	if rawPhone == "" {
		rawPhone = patient.Phone2.String
	}
	if rawPhone == "" {
		return s.failItem(item, ErrMissingPhone)
	}

	tmpl, err := s.repo.Template().GetByID(item.TemplateID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.failItem(item, ErrTemplateNotFound)
	}
	if err != nil {
		return s.failItem(item, fmt.Errorf("failed to load template: %w", err))
	}

	content := template.Render(tmpl.Content, template.Fields{
		PatientName: patient.Name,
		Date:        appointment.Date,
		Time:        appointment.Time,
		Procedures:  appointment.Procedures,
	})

	// The session can have degraded between enqueue and send; check
	// readiness immediately before dispatch.
	session, err := s.repo.Session().GetByTenantID(item.TenantID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.failAndLog(item, rawPhone, content, ErrSessionNotFound)
	}
	if err != nil {
		return s.failItem(item, fmt.Errorf("failed to load session: %w", err))
	}
	if session.Status != models.SessionStatusConnected || !session.APIKey.Valid {
		return s.failAndLog(item, rawPhone, content, ErrSessionNotConnected)
	}

	messageID, err := s.broker.SendText(ctx, session.Name, session.APIKey.String,
		phone.ForDispatch(rawPhone), content, nil)
	if err != nil {
		return s.failAndLog(item, rawPhone, content, fmt.Errorf("failed to send message: %w", err))
	}

	if moved, err := s.repo.Queue().MarkSent(item.ID); err != nil {
		return fmt.Errorf("failed to mark item sent: %w", err)
	} else if !moved {
		// The item left waiting underneath us (cancel raced the send);
		// the message is out, keep the audit trail anyway.
		s.logger.Warn("Queue item no longer waiting after send",
			zap.Int64("queue_item_id", item.ID))
	}

	if err := s.repo.MessageLog().Append(&models.MessageLog{
		TenantID:      item.TenantID,
		AppointmentID: sql.NullInt64{Int64: item.AppointmentID, Valid: true},
		Phone:         phone.ForDispatch(rawPhone),
		Content:       content,
		Direction:     models.MessageDirectionSent,
		Status:        "sent",
		BrokerMsgID:   sql.NullString{String: messageID, Valid: messageID != ""},
	}); err != nil {
		s.logger.Error("Failed to append sent message log",
			zap.Int64("queue_item_id", item.ID),
			zap.Error(err))
	}

	if err := s.repo.Appointment().SetWhatsAppConfirmed(item.AppointmentID); err != nil {
		s.logger.Error("Failed to flag appointment confirmed",
			zap.Int64("appointment_id", item.AppointmentID),
			zap.Error(err))
	}

	s.logger.Info("Delivery sent",
		zap.Int64("queue_item_id", item.ID),
		zap.Int64("appointment_id", item.AppointmentID),
		zap.String("broker_msg_id", messageID))

	return nil
}

// failItem marks the item Error and returns the cause.
func (s *queueService) failItem(item *models.QueueItem, cause error) error {
	if _, err := s.repo.Queue().MarkError(item.ID, cause.Error()); err != nil {
		s.logger.Error("Failed to mark item error",
			zap.Int64("queue_item_id", item.ID),
			zap.Error(err))
	}

	s.logger.Error("Delivery failed",
		zap.Int64("queue_item_id", item.ID),
		zap.Int64("appointment_id", item.AppointmentID),
		zap.Error(cause))

	return cause
}

// failAndLog is failItem plus an audit entry for the failed attempt.
func (s *queueService) failAndLog(item *models.QueueItem, rawPhone, content string, cause error) error {
	if err := s.repo.MessageLog().Append(&models.MessageLog{
		TenantID:      item.TenantID,
		AppointmentID: sql.NullInt64{Int64: item.AppointmentID, Valid: true},
		Phone:         phone.ForDispatch(rawPhone),
		Content:       content,
		Direction:     models.MessageDirectionSent,
		Status:        "error",
	}); err != nil {
		s.logger.Error("Failed to append error message log",
			zap.Int64("queue_item_id", item.ID),
			zap.Error(err))
	}

	return s.failItem(item, cause)
}

// ProcessBatch drains up to limit appointments with waiting items,
// sequentially, spacing sends to stay under broker throttling and
// continuing past individual failures. Only one batch runs at a time:
// a second call while one is in flight returns ErrBatchInFlight.
func (s *queueService) ProcessBatch(ctx context.Context, limit int) (*BatchResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrBatchInFlight
	}
	defer s.inFlight.Store(false)

	ids, err := s.repo.Queue().WaitingAppointmentIDs(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting appointments: %w", err)
	}

	if len(ids) == 0 {
		s.logger.Info("No waiting deliveries")
		return &BatchResult{}, nil
	}

	s.logger.Info("Processing delivery batch", zap.Int("count", len(ids)))

	delay := time.Duration(s.cfg.Scheduler.SendDelayMs) * time.Millisecond
	result := &BatchResult{}

	for i, appointmentID := range ids {
		if i > 0 && delay > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := s.ProcessItem(ctx, appointmentID); err != nil {
			result.Failed++
			continue
		}
		result.Processed++
	}

	s.logger.Info("Delivery batch completed",
		zap.Int("processed", result.Processed),
		zap.Int("failed", result.Failed))

	return result, nil
}

// Cancel flips any waiting item for the appointment to cancelled. An
// in-flight send is not interrupted; cancellation only keeps the batch
// from picking the item up later.
func (s *queueService) Cancel(appointmentID int64) error {
	if err := s.repo.Queue().CancelWaiting(appointmentID); err != nil {
		return fmt.Errorf("failed to cancel deliveries: %w", err)
	}

	return nil
}
