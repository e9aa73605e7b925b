package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/zapagenda/zap-confirm/internal/models"
)

type templateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// GetByID retrieves a template by id.
func (r *templateRepository) GetByID(id int64) (*models.MessageTemplate, error) {
	query := `
		SELECT id, tenant_id, type, content, active, created_at
		FROM message_templates
		WHERE id = $1
	`

	var template models.MessageTemplate
	err := r.db.Get(&template, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return &template, nil
}

// GetActiveByType returns the most recently created active template for
// the tenant and type. Older or inactive templates are never eligible.
func (r *templateRepository) GetActiveByType(tenantID int64, templateType string) (*models.MessageTemplate, error) {
	query := `
		SELECT id, tenant_id, type, content, active, created_at
		FROM message_templates
		WHERE tenant_id = $1 AND type = $2 AND active = TRUE
		ORDER BY created_at DESC
		LIMIT 1
	`

	var template models.MessageTemplate
	err := r.db.Get(&template, query, tenantID, templateType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active template: %w", err)
	}

	return &template, nil
}
