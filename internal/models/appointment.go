package models

import (
	"database/sql"
	"time"
)

// Appointment mirrors the scheduling system's schedule row. The table is
// owned by the scheduling system; this service only reads it for
// correlation and flips status/confirmation on replies.
type Appointment struct {
	ID                int64        `db:"id" json:"id"`
	TenantID          int64        `db:"tenant_id" json:"tenant_id"`
	PatientID         int64        `db:"patient_id" json:"patient_id"`
	Date              time.Time    `db:"date" json:"date"`
	Time              string       `db:"time" json:"time"`
	Procedures        string       `db:"procedures" json:"procedures"`
	StatusCode        int          `db:"status" json:"status"`
	WhatsAppConfirmed bool         `db:"whatsapp_confirmed" json:"whatsapp_confirmed"`
	CreatedAt         time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt         sql.NullTime `db:"updated_at" json:"updated_at,omitempty"`
}

// Status maps the stored legacy code onto the closed enumeration.
func (a *Appointment) Status() AppointmentStatus {
	return AppointmentStatusFromCode(a.StatusCode)
}

// Patient is read-only from this service's perspective. Phone fields are
// free-form text in the upstream data, punctuation and all.
type Patient struct {
	ID     int64          `db:"id" json:"id"`
	Name   string         `db:"name" json:"name"`
	Phone1 sql.NullString `db:"phone1" json:"phone1,omitempty"`
	Phone2 sql.NullString `db:"phone2" json:"phone2,omitempty"`
}

// PendingAppointment is the correlation query result: an appointment
// joined with its patient.
type PendingAppointment struct {
	Appointment
	PatientName   string         `db:"patient_name" json:"patient_name"`
	PatientPhone1 sql.NullString `db:"patient_phone1" json:"patient_phone1,omitempty"`
	PatientPhone2 sql.NullString `db:"patient_phone2" json:"patient_phone2,omitempty"`
}
