package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/broker"
	"github.com/zapagenda/zap-confirm/internal/config"
	"github.com/zapagenda/zap-confirm/internal/models"
	"github.com/zapagenda/zap-confirm/internal/repository"
)

const sessionTokenCacheTTL = 24 * time.Hour

type sessionService struct {
	cfg         *config.Config
	repo        repository.Repository
	broker      broker.Client
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewSessionService(
	cfg *config.Config,
	repo repository.Repository,
	brokerClient broker.Client,
	redisClient *redis.Client,
	logger *zap.Logger,
) SessionService {
	return &sessionService{
		cfg:         cfg,
		repo:        repo,
		broker:      brokerClient,
		redisClient: redisClient,
		logger:      logger,
	}
}

// Connect brings a tenant's session up to at least Connecting. The
// tenant is auto-provisioned, the broker instance is created on first
// contact, and reconnects upsert the same session row by name. Webhook
// registration failures are logged and swallowed so the caller still
// gets a usable QR.
func (s *sessionService) Connect(ctx context.Context, tenantID int64) (*ConnectResult, error) {
	tenant, err := s.repo.Tenant().Ensure(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure tenant: %w", err)
	}

	name := models.SessionName(tenant.ID)
	webhookURL := s.cfg.Webhook.TenantWebhookURL(tenant.ID)

	// Reuse the existing credential so the broker instance stays
	// reachable across reconnects.
	apiKey := uuid.New().String()
	alreadyConnected := false
	existing, err := s.repo.Session().GetByTenantID(tenant.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if existing != nil {
		if existing.APIKey.Valid {
			apiKey = existing.APIKey.String
		}
		alreadyConnected = existing.Status == models.SessionStatusConnected
	}

	exists, err := s.broker.InstanceExists(ctx, name, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to check broker instance: %w", err)
	}

	if !exists {
		if err := s.broker.CreateInstance(ctx, name, apiKey, webhookURL); err != nil {
			return nil, fmt.Errorf("failed to create broker instance: %w", err)
		}
		if err := s.broker.ApplyFixedSettings(ctx, name, apiKey); err != nil {
			return nil, fmt.Errorf("failed to apply instance settings: %w", err)
		}
		if err := s.broker.RegisterWebhook(ctx, name, apiKey, webhookURL); err != nil {
			// Connection must not abort on webhook registration; the
			// instance works and the webhook can be re-registered.
			s.logger.Warn("Failed to register webhook",
				zap.Int64("tenant_id", tenant.ID),
				zap.String("session", name),
				zap.Error(err))
		}
	}

	status := models.SessionStatusConnecting
	if alreadyConnected {
		status = models.SessionStatusConnected
	}

	session, err := s.repo.Session().Upsert(&models.Session{
		TenantID:   tenant.ID,
		Name:       name,
		Status:     status,
		APIKey:     sql.NullString{String: apiKey, Valid: true},
		WebhookURL: sql.NullString{String: webhookURL, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert session: %w", err)
	}

	result := &ConnectResult{
		SessionID:  session.ID,
		Status:     session.Status,
		WebhookURL: webhookURL,
	}

	if !alreadyConnected {
		qrCode, token := s.fetchPairing(ctx, name, apiKey)
		if qrCode != "" || token != "" {
			if err := s.repo.Session().UpdateQR(session.ID, qrCode, token); err != nil {
				return nil, fmt.Errorf("failed to persist qr: %w", err)
			}
		}
		result.QRCode = qrCode
		result.Token = token
	}

	s.logger.Info("Session connect completed",
		zap.Int64("tenant_id", tenant.ID),
		zap.String("session", name),
		zap.String("status", string(result.Status)))

	return result, nil
}

// fetchPairing asks the broker for a QR payload and session token.
// Failures here degrade the connect result instead of failing it.
func (s *sessionService) fetchPairing(ctx context.Context, name, apiKey string) (qrCode, token string) {
	qrCode, err := s.broker.RequestQR(ctx, name, apiKey)
	if err != nil {
		s.logger.Warn("Failed to fetch QR from broker",
			zap.String("session", name),
			zap.Error(err))
	}

	info, err := s.broker.GetInstanceInfo(ctx, name, apiKey)
	if err != nil {
		s.logger.Warn("Failed to fetch instance info from broker",
			zap.String("session", name),
			zap.Error(err))
		return qrCode, ""
	}

	return qrCode, info.Token
}

// Disconnect logs the tenant's instance out and resets the local row.
// It requires a stored broker credential.
func (s *sessionService) Disconnect(ctx context.Context, tenantID int64) error {
	session, err := s.repo.Session().GetByTenantID(tenantID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if !session.APIKey.Valid {
		return ErrNoCredential
	}

	if err := s.broker.Logout(ctx, session.Name, session.APIKey.String); err != nil {
		return fmt.Errorf("failed to log out on broker: %w", err)
	}

	if err := s.repo.Session().UpdateDisconnected(session.ID); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}

	s.invalidateTokenCache(ctx, session.Name)

	s.logger.Info("Session disconnected",
		zap.Int64("tenant_id", tenantID),
		zap.String("session", session.Name))

	return nil
}

// Status merges the local session row with a live broker query. Broker
// failure degrades to a local-only error status instead of failing the
// call; a session token learned from the broker is persisted
// opportunistically.
func (s *sessionService) Status(ctx context.Context, tenantID int64) (*SessionStatusResult, error) {
	session, err := s.repo.Session().GetByTenantID(tenantID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	result := &SessionStatusResult{
		SessionID:   session.ID,
		Status:      session.Status,
		PhoneNumber: session.PhoneNumber.String,
		ProfileName: session.ProfileName.String,
	}
	if session.ConnectedAt.Valid {
		connectedAt := session.ConnectedAt.Time
		result.ConnectedAt = &connectedAt
	}

	if !session.APIKey.Valid {
		return result, nil
	}

	state, err := s.broker.GetConnectionState(ctx, session.Name, session.APIKey.String)
	if err != nil {
		s.logger.Warn("Broker status query failed",
			zap.String("session", session.Name),
			zap.Error(err))
		result.Status = models.SessionStatusError
		result.Err = "broker status unavailable"
		return result, nil
	}

	result.Status = sessionStatusFromBrokerState(state)

	if !session.Token.Valid {
		s.backfillToken(ctx, session)
	}

	return result, nil
}

// backfillToken persists a token the broker knows but the local row is
// missing, so later calls do not depend on the broker being up.
func (s *sessionService) backfillToken(ctx context.Context, session *models.Session) {
	info, err := s.broker.GetInstanceInfo(ctx, session.Name, session.APIKey.String)
	if err != nil || info.Token == "" {
		return
	}

	if err := s.repo.Session().UpdateToken(session.ID, info.Token); err != nil {
		s.logger.Warn("Failed to backfill session token",
			zap.String("session", session.Name),
			zap.Error(err))
		return
	}

	cacheKey := sessionTokenCacheKey(session.Name)
	if err := s.redisClient.Set(ctx, cacheKey, info.Token, sessionTokenCacheTTL).Err(); err != nil {
		s.logger.Warn("Failed to cache session token",
			zap.String("session", session.Name),
			zap.Error(err))
	}
}

// HandleConnectionEvent applies a broker connection state change to the
// local session row.
func (s *sessionService) HandleConnectionEvent(ctx context.Context, instanceName, state string) error {
	session, err := s.repo.Session().GetByName(instanceName)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	switch state {
	case broker.StateOpen:
		phoneNumber, profileName := "", ""
		if session.APIKey.Valid {
			if info, infoErr := s.broker.GetInstanceInfo(ctx, instanceName, session.APIKey.String); infoErr == nil {
				phoneNumber = info.Phone
				profileName = info.Profile
			}
		}
		if err := s.repo.Session().UpdateConnected(session.ID, phoneNumber, profileName); err != nil {
			return fmt.Errorf("failed to mark session connected: %w", err)
		}
	case broker.StateConnecting:
		if err := s.repo.Session().UpdateStatus(session.ID, models.SessionStatusConnecting); err != nil {
			return fmt.Errorf("failed to mark session connecting: %w", err)
		}
	case broker.StateClose:
		if err := s.repo.Session().UpdateDisconnected(session.ID); err != nil {
			return fmt.Errorf("failed to mark session disconnected: %w", err)
		}
		s.invalidateTokenCache(ctx, instanceName)
	default:
		s.logger.Warn("Unknown connection state ignored",
			zap.String("session", instanceName),
			zap.String("state", state))
		return nil
	}

	s.logger.Info("Connection event applied",
		zap.String("session", instanceName),
		zap.String("state", state))

	return nil
}

// HandleQRUpdate stores a refreshed QR payload pushed by the broker.
func (s *sessionService) HandleQRUpdate(ctx context.Context, instanceName, qrCode string) error {
	session, err := s.repo.Session().GetByName(instanceName)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	if err := s.repo.Session().UpdateQR(session.ID, qrCode, session.Token.String); err != nil {
		return fmt.Errorf("failed to store qr update: %w", err)
	}

	return nil
}

func (s *sessionService) invalidateTokenCache(ctx context.Context, name string) {
	if err := s.redisClient.Del(ctx, sessionTokenCacheKey(name)).Err(); err != nil {
		s.logger.Warn("Failed to drop session token cache",
			zap.String("session", name),
			zap.Error(err))
	}
}

func sessionTokenCacheKey(name string) string {
	return "session:token:" + name
}

func sessionStatusFromBrokerState(state string) models.SessionStatus {
	switch state {
	case broker.StateOpen:
		return models.SessionStatusConnected
	case broker.StateConnecting:
		return models.SessionStatusConnecting
	case broker.StateClose:
		return models.SessionStatusDisconnected
	default:
		return models.SessionStatusError
	}
}
