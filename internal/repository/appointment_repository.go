package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zapagenda/zap-confirm/internal/models"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

const appointmentColumns = `id, tenant_id, patient_id, date, time, procedures, status,
	whatsapp_confirmed, created_at, updated_at`

// GetByID retrieves an appointment by id.
func (r *appointmentRepository) GetByID(id int64) (*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM schedules WHERE id = $1`

	var appointment models.Appointment
	err := r.db.Get(&appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}

	return &appointment, nil
}

// FindPendingBySuffix correlates an inbound sender with the earliest
// non-terminal appointment whose patient phone shares the 8-digit
// suffix. Phone fields upstream are free-form, so both sides of the
// comparison are digit-stripped before taking the suffix.
func (r *appointmentRepository) FindPendingBySuffix(tenantID int64, suffix string, since time.Time) (*models.PendingAppointment, error) {
	query := `
		SELECT s.id, s.tenant_id, s.patient_id, s.date, s.time, s.procedures, s.status,
		       s.whatsapp_confirmed, s.created_at, s.updated_at,
		       p.name AS patient_name, p.phone1 AS patient_phone1, p.phone2 AS patient_phone2
		FROM schedules s
		JOIN patients p ON p.id = s.patient_id
		WHERE s.tenant_id = $1
		  AND s.status NOT IN ($2, $3)
		  AND s.date >= $4
		  AND (RIGHT(regexp_replace(COALESCE(p.phone1, ''), '\D', '', 'g'), 8) = $5
		    OR RIGHT(regexp_replace(COALESCE(p.phone2, ''), '\D', '', 'g'), 8) = $5)
		ORDER BY s.date ASC, s.time ASC
		LIMIT 1
	`

	var appointment models.PendingAppointment
	err := r.db.Get(&appointment, query, tenantID,
		models.AppointmentStatusConfirmed.LegacyCode(),
		models.AppointmentStatusRescheduleRequested.LegacyCode(),
		since, suffix)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pending appointment: %w", err)
	}

	return &appointment, nil
}

// UpdateStatusIfPending writes the new status only while the appointment
// is still non-terminal, so two near-simultaneous replies cannot both
// action the same appointment.
func (r *appointmentRepository) UpdateStatusIfPending(id int64, status models.AppointmentStatus) (bool, error) {
	query := `
		UPDATE schedules
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status NOT IN ($4, $5)
	`

	result, err := r.db.Exec(query, id, status.LegacyCode(), time.Now(),
		models.AppointmentStatusConfirmed.LegacyCode(),
		models.AppointmentStatusRescheduleRequested.LegacyCode())
	if err != nil {
		return false, fmt.Errorf("failed to update appointment status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}

// SetWhatsAppConfirmed flips the confirmation flag after a successful
// outbound send.
func (r *appointmentRepository) SetWhatsAppConfirmed(id int64) error {
	query := `UPDATE schedules SET whatsapp_confirmed = TRUE, updated_at = $2 WHERE id = $1`

	if _, err := r.db.Exec(query, id, time.Now()); err != nil {
		return fmt.Errorf("failed to set whatsapp confirmed: %w", err)
	}

	return nil
}

// GetPatient retrieves a patient row.
func (r *appointmentRepository) GetPatient(id int64) (*models.Patient, error) {
	query := `SELECT id, name, phone1, phone2 FROM patients WHERE id = $1`

	var patient models.Patient
	err := r.db.Get(&patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return &patient, nil
}
