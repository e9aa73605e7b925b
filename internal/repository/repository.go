// Package repository provides data access for the orchestration core.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db          *sqlx.DB
	tenant      TenantRepository
	session     SessionRepository
	appointment AppointmentRepository
	template    TemplateRepository
	queue       QueueRepository
	messageLog  MessageLogRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:          db,
		tenant:      NewTenantRepository(db),
		session:     NewSessionRepository(db),
		appointment: NewAppointmentRepository(db),
		template:    NewTemplateRepository(db),
		queue:       NewQueueRepository(db),
		messageLog:  NewMessageLogRepository(db),
	}
}

func (r *repositoryImpl) Tenant() TenantRepository           { return r.tenant }
func (r *repositoryImpl) Session() SessionRepository         { return r.session }
func (r *repositoryImpl) Appointment() AppointmentRepository { return r.appointment }
func (r *repositoryImpl) Template() TemplateRepository       { return r.template }
func (r *repositoryImpl) Queue() QueueRepository             { return r.queue }
func (r *repositoryImpl) MessageLog() MessageLogRepository   { return r.messageLog }

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
