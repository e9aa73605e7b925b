package models

import "time"

// Template types used by the confirmation workflow.
const (
	TemplateTypeConfirm    = "confirmar"
	TemplateTypeReschedule = "reagendar"
)

// MessageTemplate is a per-tenant, per-type message body with named
// placeholders ({{nome}}, {{data}}, {{hora}}, {{procedimentos}}). Only
// the most recently created active template of a type is eligible.
type MessageTemplate struct {
	ID        int64     `db:"id" json:"id"`
	TenantID  int64     `db:"tenant_id" json:"tenant_id"`
	Type      string    `db:"type" json:"type"`
	Content   string    `db:"content" json:"content"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
