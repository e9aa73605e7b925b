package models

import (
	"database/sql"
	"time"
)

// MessageLog is an append-only audit record of every inbound and
// outbound text. Rows are never mutated after insert.
type MessageLog struct {
	ID            int64            `db:"id" json:"id"`
	TenantID      int64            `db:"tenant_id" json:"tenant_id"`
	AppointmentID sql.NullInt64    `db:"appointment_id" json:"appointment_id,omitempty"`
	Phone         string           `db:"phone" json:"phone"`
	Content       string           `db:"content" json:"content"`
	Direction     MessageDirection `db:"direction" json:"direction"`
	Status        string           `db:"status" json:"status"`
	BrokerMsgID   sql.NullString   `db:"broker_msg_id" json:"broker_msg_id,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"created_at"`
}
