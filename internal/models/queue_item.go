package models

import (
	"database/sql"
	"time"
)

// QueueItem is one pending or attempted outbound send tied to an
// appointment and a template.
type QueueItem struct {
	ID            int64           `db:"id" json:"id"`
	AppointmentID int64           `db:"appointment_id" json:"appointment_id"`
	TenantID      int64           `db:"tenant_id" json:"tenant_id"`
	TemplateID    int64           `db:"template_id" json:"template_id"`
	Status        QueueItemStatus `db:"status" json:"status"`
	Error         sql.NullString  `db:"error" json:"error,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	SentAt        sql.NullTime    `db:"sent_at" json:"sent_at,omitempty"`
}
