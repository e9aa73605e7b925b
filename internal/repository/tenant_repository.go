package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/zapagenda/zap-confirm/internal/models"
)

type tenantRepository struct {
	db *sqlx.DB
}

func NewTenantRepository(db *sqlx.DB) TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// GetByID retrieves a tenant by id.
func (r *tenantRepository) GetByID(id int64) (*models.Tenant, error) {
	query := `
		SELECT id, name, active, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	var tenant models.Tenant
	err := r.db.Get(&tenant, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &tenant, nil
}

// Ensure auto-provisions the tenant on first contact. The id is assigned
// by the scheduling platform, so the insert carries it explicitly.
func (r *tenantRepository) Ensure(id int64) (*models.Tenant, error) {
	query := `
		INSERT INTO tenants (id, name, active, created_at, updated_at)
		VALUES ($1, $2, TRUE, $3, $3)
		ON CONFLICT (id) DO NOTHING
	`

	name := fmt.Sprintf("tenant %d", id)
	if _, err := r.db.Exec(query, id, name, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to ensure tenant: %w", err)
	}

	return r.GetByID(id)
}
