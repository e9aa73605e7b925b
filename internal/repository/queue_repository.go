package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zapagenda/zap-confirm/internal/models"
)

type queueRepository struct {
	db *sqlx.DB
}

func NewQueueRepository(db *sqlx.DB) QueueRepository {
	return &queueRepository{
		db: db,
	}
}

const queueColumns = `id, appointment_id, tenant_id, template_id, status, error, created_at, sent_at`

// Enqueue inserts a waiting item. It never sends.
func (r *queueRepository) Enqueue(appointmentID, tenantID, templateID int64) (*models.QueueItem, error) {
	query := `
		INSERT INTO delivery_queue (appointment_id, tenant_id, template_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + queueColumns

	var item models.QueueItem
	err := r.db.Get(&item, query, appointmentID, tenantID, templateID,
		models.QueueItemStatusWaiting, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue item: %w", err)
	}

	return &item, nil
}

// OldestWaiting returns the oldest waiting item for an appointment.
func (r *queueRepository) OldestWaiting(appointmentID int64) (*models.QueueItem, error) {
	query := `
		SELECT ` + queueColumns + `
		FROM delivery_queue
		WHERE appointment_id = $1 AND status = $2
		ORDER BY created_at ASC
		LIMIT 1
	`

	var item models.QueueItem
	err := r.db.Get(&item, query, appointmentID, models.QueueItemStatusWaiting)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get oldest waiting item: %w", err)
	}

	return &item, nil
}

// WaitingAppointmentIDs returns distinct appointment ids with waiting
// items, ordered by their oldest item so the batch drains fairly.
func (r *queueRepository) WaitingAppointmentIDs(limit int) ([]int64, error) {
	query := `
		SELECT appointment_id
		FROM delivery_queue
		WHERE status = $1
		GROUP BY appointment_id
		ORDER BY MIN(created_at) ASC
		LIMIT $2
	`

	var ids []int64
	if err := r.db.Select(&ids, query, models.QueueItemStatusWaiting, limit); err != nil {
		return nil, fmt.Errorf("failed to get waiting appointment ids: %w", err)
	}

	return ids, nil
}

// MarkSent transitions an item from waiting to sent. Items already in a
// terminal state are left alone.
func (r *queueRepository) MarkSent(id int64) (bool, error) {
	query := `
		UPDATE delivery_queue
		SET status = $2, sent_at = $3
		WHERE id = $1 AND status = $4
	`

	result, err := r.db.Exec(query, id, models.QueueItemStatusSent, time.Now(),
		models.QueueItemStatusWaiting)
	if err != nil {
		return false, fmt.Errorf("failed to mark item sent: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}

// MarkError transitions an item from waiting to error with the failure
// message. Terminal items are left alone.
func (r *queueRepository) MarkError(id int64, errorMsg string) (bool, error) {
	query := `
		UPDATE delivery_queue
		SET status = $2, error = $3
		WHERE id = $1 AND status = $4
	`

	result, err := r.db.Exec(query, id, models.QueueItemStatusError, errorMsg,
		models.QueueItemStatusWaiting)
	if err != nil {
		return false, fmt.Errorf("failed to mark item error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}

// CancelWaiting cancels any waiting item for the appointment. No waiting
// item is not an error.
func (r *queueRepository) CancelWaiting(appointmentID int64) error {
	query := `
		UPDATE delivery_queue
		SET status = $2
		WHERE appointment_id = $1 AND status = $3
	`

	_, err := r.db.Exec(query, appointmentID, models.QueueItemStatusCancelled,
		models.QueueItemStatusWaiting)
	if err != nil {
		return fmt.Errorf("failed to cancel waiting items: %w", err)
	}

	return nil
}
