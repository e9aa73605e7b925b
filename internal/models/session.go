package models

import (
	"database/sql"
	"fmt"
	"time"
)

// Session is the local record of a tenant's WhatsApp connection. The
// remote broker instance is named after the tenant (see SessionName) and
// reconnects upsert by that name rather than creating duplicates.
type Session struct {
	ID          int64          `db:"id" json:"id"`
	TenantID    int64          `db:"tenant_id" json:"tenant_id"`
	Name        string         `db:"name" json:"name"`
	Status      SessionStatus  `db:"status" json:"status"`
	APIKey      sql.NullString `db:"api_key" json:"-"`
	WebhookURL  sql.NullString `db:"webhook_url" json:"webhook_url,omitempty"`
	QRCode      sql.NullString `db:"qr_code" json:"qr_code,omitempty"`
	Token       sql.NullString `db:"token" json:"-"`
	PhoneNumber sql.NullString `db:"phone_number" json:"phone_number,omitempty"`
	ProfileName sql.NullString `db:"profile_name" json:"profile_name,omitempty"`
	ConnectedAt sql.NullTime   `db:"connected_at" json:"connected_at,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// SessionName derives the broker instance name for a tenant.
func SessionName(tenantID int64) string {
	return fmt.Sprintf("tenant_%d", tenantID)
}
