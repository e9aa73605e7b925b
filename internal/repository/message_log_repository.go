package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zapagenda/zap-confirm/internal/models"
)

type messageLogRepository struct {
	db *sqlx.DB
}

func NewMessageLogRepository(db *sqlx.DB) MessageLogRepository {
	return &messageLogRepository{
		db: db,
	}
}

// Append inserts an audit row. The log is append-only; there is no
// update path.
func (r *messageLogRepository) Append(entry *models.MessageLog) error {
	query := `
		INSERT INTO message_log (tenant_id, appointment_id, phone, content, direction, status, broker_msg_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(query, entry.TenantID, entry.AppointmentID, entry.Phone,
		entry.Content, entry.Direction, entry.Status, entry.BrokerMsgID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to append message log: %w", err)
	}

	return nil
}

// ListByTenant retrieves log entries with pagination, newest first.
func (r *messageLogRepository) ListByTenant(tenantID int64, offset, limit int) ([]*models.MessageLog, error) {
	query := `
		SELECT id, tenant_id, appointment_id, phone, content, direction, status, broker_msg_id, created_at
		FROM message_log
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var entries []*models.MessageLog
	if err := r.db.Select(&entries, query, tenantID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list message log: %w", err)
	}

	return entries, nil
}

// CountByTenant returns the total log entries for a tenant.
func (r *messageLogRepository) CountByTenant(tenantID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM message_log WHERE tenant_id = $1`

	if err := r.db.Get(&count, query, tenantID); err != nil {
		return 0, fmt.Errorf("failed to count message log: %w", err)
	}

	return count, nil
}
