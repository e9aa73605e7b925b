package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/broker"
	"github.com/zapagenda/zap-confirm/internal/models"
	"github.com/zapagenda/zap-confirm/internal/phone"
	"github.com/zapagenda/zap-confirm/internal/repository"
	"github.com/zapagenda/zap-confirm/internal/webhook"
)

const (
	messageDedupeTTL = 24 * time.Hour

	// fallbackReply restates the options when the sender typed digits
	// that are not one of them.
	fallbackReply = "Desculpe, não entendi. Responda 1 para confirmar ou 2 para reagendar."
)

// correlationSince bounds correlation to appointments dated yesterday
// or later, covering messages sent late the night before. Appointment
// dates are calendar dates, so the bound has to be midnight or
// yesterday's rows compare below it and stop matching.
func correlationSince(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
}

type confirmationService struct {
	repo        repository.Repository
	broker      broker.Client
	queue       QueueService
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewConfirmationService(
	repo repository.Repository,
	brokerClient broker.Client,
	queue QueueService,
	redisClient *redis.Client,
	logger *zap.Logger,
) ConfirmationService {
	return &confirmationService{
		repo:        repo,
		broker:      brokerClient,
		queue:       queue,
		redisClient: redisClient,
		logger:      logger,
	}
}

// HandleInbound runs one inbound reply through dedupe, correlation,
// classification and the resulting side effects. The appointment status
// update and the acknowledgment send are independent: a missing
// template or a failed send never rolls the status back.
func (s *confirmationService) HandleInbound(ctx context.Context, tenantID int64, msg *webhook.MessageReceived) (*ConfirmationResult, error) {
	if duplicate := s.isDuplicate(ctx, tenantID, msg.MessageID); duplicate {
		s.logger.Info("Duplicate webhook delivery skipped",
			zap.Int64("tenant_id", tenantID),
			zap.String("message_id", msg.MessageID))
		return &ConfirmationResult{Action: ActionIgnore, Detail: "duplicate delivery"}, nil
	}

	senderPhone := phoneFromJID(msg.RemoteJID)
	suffix := phone.Suffix(senderPhone)
	if len(suffix) < phone.SuffixLen {
		return &ConfirmationResult{Action: ActionIgnore, Detail: "sender phone too short"}, nil
	}

	since := correlationSince(time.Now())
	appointment, err := s.repo.Appointment().FindPendingBySuffix(tenantID, suffix, since)
	if errors.Is(err, repository.ErrNotFound) {
		s.logger.Info("No pending appointment for sender",
			zap.Int64("tenant_id", tenantID),
			zap.String("suffix", suffix))
		return &ConfirmationResult{Action: ActionIgnore, Detail: "no pending appointment"}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to correlate appointment: %w", err)
	}

	classification := ClassifyReply(msg.Text)
	result := &ConfirmationResult{
		Action:        classification.Action,
		AppointmentID: appointment.ID,
	}

	switch classification.Action {
	case ActionIgnore:
		return result, nil
	case ActionFallback:
		return s.handleFallback(ctx, tenantID, appointment, senderPhone, result)
	}

	s.appendLog(&models.MessageLog{
		TenantID:      tenantID,
		AppointmentID: sql.NullInt64{Int64: appointment.ID, Valid: true},
		Phone:         senderPhone,
		Content:       msg.Text,
		Direction:     models.MessageDirectionReceived,
		Status:        "received",
		BrokerMsgID:   sql.NullString{String: msg.MessageID, Valid: msg.MessageID != ""},
	})

	updated, err := s.repo.Appointment().UpdateStatusIfPending(appointment.ID, classification.TargetStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	if !updated {
		// Another reply resolved the appointment first; this one is late.
		result.Detail = "appointment already resolved"
		return result, nil
	}
	result.StatusUpdated = true

	s.logger.Info("Appointment status updated",
		zap.Int64("tenant_id", tenantID),
		zap.Int64("appointment_id", appointment.ID),
		zap.String("action", string(classification.Action)))

	tmpl, err := s.repo.Template().GetActiveByType(tenantID, classification.TemplateType)
	if errors.Is(err, repository.ErrNotFound) {
		result.Detail = "no active template for acknowledgment"
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load acknowledgment template: %w", err)
	}

	if err := s.queue.Enqueue(appointment.ID, tenantID, tmpl.ID); err != nil {
		result.Detail = "failed to enqueue acknowledgment"
		s.logger.Error("Failed to enqueue acknowledgment",
			zap.Int64("appointment_id", appointment.ID),
			zap.Error(err))
		return result, nil
	}

	if err := s.queue.ProcessItem(ctx, appointment.ID); err != nil {
		result.Detail = "acknowledgment send failed"
		return result, nil
	}
	result.MessageSent = true

	return result, nil
}

// handleFallback restates the reply options without touching the
// appointment. The send goes straight through the broker since there is
// no template or queue item involved.
func (s *confirmationService) handleFallback(ctx context.Context, tenantID int64, appointment *models.PendingAppointment, senderPhone string, result *ConfirmationResult) (*ConfirmationResult, error) {
	session, err := s.repo.Session().GetByTenantID(tenantID)
	if errors.Is(err, repository.ErrNotFound) {
		result.Detail = "no session for fallback reply"
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.Status != models.SessionStatusConnected || !session.APIKey.Valid {
		result.Detail = "session not connected for fallback reply"
		return result, nil
	}

	messageID, err := s.broker.SendText(ctx, session.Name, session.APIKey.String,
		phone.ForDispatch(senderPhone), fallbackReply, nil)
	if err != nil {
		result.Detail = "fallback send failed"
		s.logger.Error("Fallback reply send failed",
			zap.Int64("tenant_id", tenantID),
			zap.Int64("appointment_id", appointment.ID),
			zap.Error(err))
		return result, nil
	}
	result.MessageSent = true

	s.appendLog(&models.MessageLog{
		TenantID:      tenantID,
		AppointmentID: sql.NullInt64{Int64: appointment.ID, Valid: true},
		Phone:         phone.ForDispatch(senderPhone),
		Content:       fallbackReply,
		Direction:     models.MessageDirectionSent,
		Status:        "sent",
		BrokerMsgID:   sql.NullString{String: messageID, Valid: messageID != ""},
	})

	return result, nil
}

// isDuplicate claims the message id in redis. A redis failure counts as
// not-duplicate so an outage never drops replies; the status update is
// conditional anyway, reprocessing is safe.
func (s *confirmationService) isDuplicate(ctx context.Context, tenantID int64, messageID string) bool {
	if messageID == "" {
		return false
	}

	key := fmt.Sprintf("webhook:msg:%d:%s", tenantID, messageID)
	claimed, err := s.redisClient.SetNX(ctx, key, 1, messageDedupeTTL).Result()
	if err != nil {
		s.logger.Warn("Webhook dedupe check failed",
			zap.String("key", key),
			zap.Error(err))
		return false
	}

	return !claimed
}

func (s *confirmationService) appendLog(entry *models.MessageLog) {
	if err := s.repo.MessageLog().Append(entry); err != nil {
		s.logger.Error("Failed to append message log",
			zap.Int64("tenant_id", entry.TenantID),
			zap.Error(err))
	}
}

// phoneFromJID strips the WhatsApp JID domain from a sender address.
func phoneFromJID(jid string) string {
	if i := strings.IndexByte(jid, '@'); i >= 0 {
		return jid[:i]
	}
	return jid
}
