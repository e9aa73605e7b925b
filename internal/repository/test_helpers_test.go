package repository_test

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

func insertTestTenant(db *sqlx.DB, id int64) error {
	query := `
		INSERT INTO tenants (id, name, active, created_at, updated_at)
		VALUES ($1, $2, TRUE, NOW(), NOW())
	`

	if _, err := db.Exec(query, id, fmt.Sprintf("tenant %d", id)); err != nil {
		return fmt.Errorf("failed to insert test tenant: %w", err)
	}
	return nil
}

func insertTestPatient(db *sqlx.DB, name, phone1, phone2 string) (int64, error) {
	var id int64
	query := `
		INSERT INTO patients (name, phone1, phone2)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		RETURNING id
	`

	if err := db.QueryRow(query, name, phone1, phone2).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test patient: %w", err)
	}
	return id, nil
}

func insertTestSchedule(db *sqlx.DB, tenantID, patientID int64, date time.Time, timeOfDay string, status int) (int64, error) {
	var id int64
	query := `
		INSERT INTO schedules (tenant_id, patient_id, date, time, procedures, status, created_at)
		VALUES ($1, $2, $3, $4, 'Limpeza', $5, NOW())
		RETURNING id
	`

	if err := db.QueryRow(query, tenantID, patientID, date, timeOfDay, status).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test schedule: %w", err)
	}
	return id, nil
}

func insertTestTemplate(db *sqlx.DB, tenantID int64, templateType, content string, active bool, createdAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO message_templates (tenant_id, type, content, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := db.QueryRow(query, tenantID, templateType, content, active, createdAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert test template: %w", err)
	}
	return id, nil
}
