package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zapagenda/zap-confirm/internal/models"
)

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

const sessionColumns = `id, tenant_id, name, status, api_key, webhook_url, qr_code, token,
	phone_number, profile_name, connected_at, created_at, updated_at`

// GetByTenantID retrieves a tenant's session.
func (r *sessionRepository) GetByTenantID(tenantID int64) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE tenant_id = $1`

	var session models.Session
	err := r.db.Get(&session, query, tenantID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session by tenant: %w", err)
	}

	return &session, nil
}

// GetByName retrieves a session by its derived broker instance name.
func (r *sessionRepository) GetByName(name string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE name = $1`

	var session models.Session
	err := r.db.Get(&session, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session by name: %w", err)
	}

	return &session, nil
}

// Upsert inserts or updates the session keyed by name. Reconnections
// reuse the existing row, so a tenant never accumulates sessions. An
// input without a QR or token keeps whatever a previous pairing
// stored; only a non-null value overwrites.
func (r *sessionRepository) Upsert(session *models.Session) (*models.Session, error) {
	query := `
		INSERT INTO sessions (tenant_id, name, status, api_key, webhook_url, qr_code, token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (name) DO UPDATE
		SET status = EXCLUDED.status,
		    api_key = EXCLUDED.api_key,
		    webhook_url = EXCLUDED.webhook_url,
		    qr_code = COALESCE(EXCLUDED.qr_code, sessions.qr_code),
		    token = COALESCE(EXCLUDED.token, sessions.token),
		    updated_at = EXCLUDED.updated_at
		RETURNING ` + sessionColumns

	var stored models.Session
	err := r.db.Get(&stored, query,
		session.TenantID, session.Name, session.Status, session.APIKey,
		session.WebhookURL, session.QRCode, session.Token, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert session: %w", err)
	}

	return &stored, nil
}

// UpdateStatus sets only the lifecycle status.
func (r *sessionRepository) UpdateStatus(id int64, status models.SessionStatus) error {
	query := `UPDATE sessions SET status = $2, updated_at = $3 WHERE id = $1`

	if _, err := r.db.Exec(query, id, status, time.Now()); err != nil {
		return fmt.Errorf("failed to update session status: %w", err)
	}

	return nil
}

// UpdateQR stores a fresh QR payload and session token.
func (r *sessionRepository) UpdateQR(id int64, qrCode, token string) error {
	query := `
		UPDATE sessions
		SET qr_code = $2, token = $3, updated_at = $4
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, nullString(qrCode), nullString(token), time.Now()); err != nil {
		return fmt.Errorf("failed to update session qr: %w", err)
	}

	return nil
}

// UpdateToken backfills a session token learned from the broker.
func (r *sessionRepository) UpdateToken(id int64, token string) error {
	query := `UPDATE sessions SET token = $2, updated_at = $3 WHERE id = $1`

	if _, err := r.db.Exec(query, id, nullString(token), time.Now()); err != nil {
		return fmt.Errorf("failed to update session token: %w", err)
	}

	return nil
}

// UpdateConnected marks the session connected with the remote identity
// and clears the QR payload, which is only meaningful while pairing.
func (r *sessionRepository) UpdateConnected(id int64, phoneNumber, profileName string) error {
	query := `
		UPDATE sessions
		SET status = $2,
		    phone_number = $3,
		    profile_name = $4,
		    qr_code = NULL,
		    connected_at = $5,
		    updated_at = $5
		WHERE id = $1
	`

	now := time.Now()
	if _, err := r.db.Exec(query, id, models.SessionStatusConnected,
		nullString(phoneNumber), nullString(profileName), now); err != nil {
		return fmt.Errorf("failed to update session connected: %w", err)
	}

	return nil
}

// UpdateDisconnected resets the session to disconnected and clears the
// transient connection fields.
func (r *sessionRepository) UpdateDisconnected(id int64) error {
	query := `
		UPDATE sessions
		SET status = $2,
		    phone_number = NULL,
		    profile_name = NULL,
		    qr_code = NULL,
		    token = NULL,
		    connected_at = NULL,
		    updated_at = $3
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, models.SessionStatusDisconnected, time.Now()); err != nil {
		return fmt.Errorf("failed to update session disconnected: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
