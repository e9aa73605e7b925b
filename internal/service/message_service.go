package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/api"
	"github.com/zapagenda/zap-confirm/internal/broker"
	"github.com/zapagenda/zap-confirm/internal/models"
	"github.com/zapagenda/zap-confirm/internal/phone"
	"github.com/zapagenda/zap-confirm/internal/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type messageService struct {
	repo   repository.Repository
	broker broker.Client
	logger *zap.Logger
}

func NewMessageService(
	repo repository.Repository,
	brokerClient broker.Client,
	logger *zap.Logger,
) MessageService {
	return &messageService{
		repo:   repo,
		broker: brokerClient,
		logger: logger,
	}
}

// SendDirect sends a text outside the confirmation workflow, still
// through the tenant's session and into the audit log.
func (s *messageService) SendDirect(ctx context.Context, tenantID int64, phoneNumber, text string, opts *broker.SendOptions) (string, error) {
	session, err := s.repo.Session().GetByTenantID(tenantID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	if session.Status != models.SessionStatusConnected || !session.APIKey.Valid {
		return "", ErrSessionNotConnected
	}

	dispatchPhone := phone.ForDispatch(phoneNumber)
	messageID, err := s.broker.SendText(ctx, session.Name, session.APIKey.String, dispatchPhone, text, opts)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	if err := s.repo.MessageLog().Append(&models.MessageLog{
		TenantID:    tenantID,
		Phone:       dispatchPhone,
		Content:     text,
		Direction:   models.MessageDirectionSent,
		Status:      "sent",
		BrokerMsgID: sql.NullString{String: messageID, Valid: messageID != ""},
	}); err != nil {
		s.logger.Error("Failed to append direct send log",
			zap.Int64("tenant_id", tenantID),
			zap.Error(err))
	}

	s.logger.Info("Direct message sent",
		zap.Int64("tenant_id", tenantID),
		zap.String("broker_msg_id", messageID))

	return messageID, nil
}

// ListMessages returns a page of the tenant's audit log, newest first.
func (s *messageService) ListMessages(tenantID int64, page, limit int) (*api.MessageListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset := (page - 1) * limit

	entries, err := s.repo.MessageLog().ListByTenant(tenantID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	total, err := s.repo.MessageLog().CountByTenant(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	response := &api.MessageListResponse{
		Messages: make([]api.MessageLogEntry, 0, len(entries)),
		Pagination: api.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int(total),
			ItemsPerPage: limit,
		},
	}

	for _, entry := range entries {
		wire := api.MessageLogEntry{
			ID:        entry.ID,
			Phone:     entry.Phone,
			Content:   entry.Content,
			Direction: string(entry.Direction),
			Status:    entry.Status,
		}
		if entry.AppointmentID.Valid {
			id := entry.AppointmentID.Int64
			wire.AppointmentID = &id
		}
		if entry.BrokerMsgID.Valid {
			msgID := entry.BrokerMsgID.String
			wire.BrokerMsgID = &msgID
		}
		createdAt := entry.CreatedAt
		wire.CreatedAt = &createdAt
		response.Messages = append(response.Messages, wire)
	}

	return response, nil
}
