package models

import "time"

// Tenant is an isolated customer owning at most one WhatsApp session.
// Tenants are auto-provisioned on the first connect call and never
// hard-deleted.
type Tenant struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
