package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	brokermocks "github.com/zapagenda/zap-confirm/internal/broker/mocks"
	"github.com/zapagenda/zap-confirm/internal/config"
	"github.com/zapagenda/zap-confirm/internal/models"
	"github.com/zapagenda/zap-confirm/internal/repository"
	"github.com/zapagenda/zap-confirm/internal/repository/mocks"
	"github.com/zapagenda/zap-confirm/internal/service"
)

type queueFixture struct {
	repo        *mocks.MockRepository
	queue       *mocks.MockQueueRepository
	appointment *mocks.MockAppointmentRepository
	template    *mocks.MockTemplateRepository
	session     *mocks.MockSessionRepository
	messageLog  *mocks.MockMessageLogRepository
	broker      *brokermocks.MockClient
	service     service.QueueService
}

func newQueueFixture(t *testing.T, ctrl *gomock.Controller) *queueFixture {
	t.Helper()

	f := &queueFixture{
		repo:        mocks.NewMockRepository(ctrl),
		queue:       mocks.NewMockQueueRepository(ctrl),
		appointment: mocks.NewMockAppointmentRepository(ctrl),
		template:    mocks.NewMockTemplateRepository(ctrl),
		session:     mocks.NewMockSessionRepository(ctrl),
		messageLog:  mocks.NewMockMessageLogRepository(ctrl),
		broker:      brokermocks.NewMockClient(ctrl),
	}

	f.repo.EXPECT().Queue().Return(f.queue).AnyTimes()
	f.repo.EXPECT().Appointment().Return(f.appointment).AnyTimes()
	f.repo.EXPECT().Template().Return(f.template).AnyTimes()
	f.repo.EXPECT().Session().Return(f.session).AnyTimes()
	f.repo.EXPECT().MessageLog().Return(f.messageLog).AnyTimes()

	cfg := &config.Config{
		Scheduler: config.SchedulerConfig{BatchSize: 10, SendDelayMs: 0},
	}
	f.service = service.NewQueueService(cfg, f.repo, f.broker, zap.NewNop())

	return f
}

func waitingItem() *models.QueueItem {
	return &models.QueueItem{
		ID:            10,
		AppointmentID: 100,
		TenantID:      1,
		TemplateID:    5,
		Status:        models.QueueItemStatusWaiting,
	}
}

func connectedSession() *models.Session {
	return &models.Session{
		ID:       1,
		TenantID: 1,
		Name:     "tenant_1",
		Status:   models.SessionStatusConnected,
		APIKey:   sql.NullString{String: "instance-key", Valid: true},
	}
}

func TestQueueService_ProcessItem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQueueFixture(t, ctrl)

	f.queue.EXPECT().OldestWaiting(int64(100)).Return(waitingItem(), nil)
	f.appointment.EXPECT().GetByID(int64(100)).Return(&models.Appointment{
		ID:         100,
		TenantID:   1,
		PatientID:  50,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:       "14:30",
		Procedures: "Limpeza",
	}, nil)
	f.appointment.EXPECT().GetPatient(int64(50)).Return(&models.Patient{
		ID:     50,
		Name:   "Maria",
		Phone1: sql.NullString{String: "(11) 98765-4321", Valid: true},
	}, nil)
	f.template.EXPECT().GetByID(int64(5)).Return(&models.MessageTemplate{
		ID:      5,
		Type:    models.TemplateTypeConfirm,
		Content: "Olá {{nome}}, sua consulta é {{data}} às {{hora}}.",
		Active:  true,
	}, nil)
	f.session.EXPECT().GetByTenantID(int64(1)).Return(connectedSession(), nil)

	f.broker.EXPECT().
		SendText(gomock.Any(), "tenant_1", "instance-key", "5511987654321",
			"Olá Maria, sua consulta é 10/03/2025 às 14:30.", gomock.Nil()).
		Return("msg-1", nil)

	f.queue.EXPECT().MarkSent(int64(10)).Return(true, nil)
	f.messageLog.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *models.MessageLog) error {
		assert.Equal(t, models.MessageDirectionSent, entry.Direction)
		assert.Equal(t, "sent", entry.Status)
		assert.Equal(t, "5511987654321", entry.Phone)
		assert.Equal(t, "msg-1", entry.BrokerMsgID.String)
		return nil
	})
	f.appointment.EXPECT().SetWhatsAppConfirmed(int64(100)).Return(nil)

	err := f.service.ProcessItem(context.Background(), 100)
	assert.NoError(t, err)
}

func TestQueueService_ProcessItem_NoWaitingItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQueueFixture(t, ctrl)
	f.queue.EXPECT().OldestWaiting(int64(100)).Return(nil, repository.ErrNotFound)

	err := f.service.ProcessItem(context.Background(), 100)
	assert.ErrorIs(t, err, service.ErrNoWaitingItem)
}

func TestQueueService_ProcessItem_MissingPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQueueFixture(t, ctrl)

	f.queue.EXPECT().OldestWaiting(int64(100)).Return(waitingItem(), nil)
	f.appointment.EXPECT().GetByID(int64(100)).Return(&models.Appointment{
		ID: 100, TenantID: 1, PatientID: 50,
	}, nil)
	f.appointment.EXPECT().GetPatient(int64(50)).Return(&models.Patient{
		ID: 50, Name: "Maria",
	}, nil)
	f.queue.EXPECT().MarkError(int64(10), gomock.Any()).Return(true, nil)

	err := f.service.ProcessItem(context.Background(), 100)
	assert.ErrorIs(t, err, service.ErrMissingPhone)
}

func TestQueueService_ProcessItem_SessionNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQueueFixture(t, ctrl)

	f.queue.EXPECT().OldestWaiting(int64(100)).Return(waitingItem(), nil)
	f.appointment.EXPECT().GetByID(int64(100)).Return(&models.Appointment{
		ID: 100, TenantID: 1, PatientID: 50,
	}, nil)
	f.appointment.EXPECT().GetPatient(int64(50)).Return(&models.Patient{
		ID: 50, Name: "Maria",
		Phone1: sql.NullString{String: "11987654321", Valid: true},
	}, nil)
	f.template.EXPECT().GetByID(int64(5)).Return(&models.MessageTemplate{
		ID: 5, Content: "oi", Active: true,
	}, nil)
	f.session.EXPECT().GetByTenantID(int64(1)).Return(&models.Session{
		ID: 1, TenantID: 1, Name: "tenant_1",
		Status: models.SessionStatusDisconnected,
	}, nil)

	f.messageLog.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *models.MessageLog) error {
		assert.Equal(t, "error", entry.Status)
		return nil
	})
	f.queue.EXPECT().MarkError(int64(10), gomock.Any()).Return(true, nil)

	err := f.service.ProcessItem(context.Background(), 100)
	assert.ErrorIs(t, err, service.ErrSessionNotConnected)
}

func TestQueueService_ProcessItem_SendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQueueFixture(t, ctrl)

	f.queue.EXPECT().OldestWaiting(int64(100)).Return(waitingItem(), nil)
	f.appointment.EXPECT().GetByID(int64(100)).Return(&models.Appointment{
		ID: 100, TenantID: 1, PatientID: 50,
	}, nil)
	f.appointment.EXPECT().GetPatient(int64(50)).Return(&models.Patient{
		ID: 50, Name: "Maria",
		Phone1: sql.NullString{String: "11987654321", Valid: true},
	}, nil)
	f.template.EXPECT().GetByID(int64(5)).Return(&models.MessageTemplate{
		ID: 5, Content: "oi", Active: true,
	}, nil)
	f.session.EXPECT().GetByTenantID(int64(1)).Return(connectedSession(), nil)

	sendErr := errors.New("gateway timeout")
	f.broker.EXPECT().
		SendText(gomock.Any(), "tenant_1", "instance-key", gomock.Any(), gomock.Any(), gomock.Nil()).
		Return("", sendErr)

	f.messageLog.EXPECT().Append(gomock.Any()).Return(nil)
	f.queue.EXPECT().MarkError(int64(10), gomock.Any()).Return(true, nil)

	err := f.service.ProcessItem(context.Background(), 100)
	assert.ErrorIs(t, err, sendErr)
}

func TestQueueService_ProcessBatch_ContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQueueFixture(t, ctrl)

	f.queue.EXPECT().WaitingAppointmentIDs(10).Return([]int64{100, 200}, nil)

	// First appointment fails before the send, second has nothing waiting.
	f.queue.EXPECT().OldestWaiting(int64(100)).Return(waitingItem(), nil)
	f.appointment.EXPECT().GetByID(int64(100)).Return(nil, errors.New("db error"))
	f.queue.EXPECT().MarkError(int64(10), gomock.Any()).Return(true, nil)
	f.queue.EXPECT().OldestWaiting(int64(200)).Return(nil, repository.ErrNotFound)

	result, err := f.service.ProcessBatch(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 2, result.Failed)
}

func TestQueueService_ProcessBatch_RejectsOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQueueFixture(t, ctrl)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.queue.EXPECT().WaitingAppointmentIDs(10).DoAndReturn(func(int) ([]int64, error) {
		close(entered)
		<-release
		return nil, nil
	})

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.service.ProcessBatch(context.Background(), 10)
		firstDone <- err
	}()

	<-entered
	_, err := f.service.ProcessBatch(context.Background(), 10)
	assert.ErrorIs(t, err, service.ErrBatchInFlight)

	close(release)
	require.NoError(t, <-firstDone)

	// Once the first run finishes the guard is released again.
	f.queue.EXPECT().WaitingAppointmentIDs(10).Return(nil, nil)
	_, err = f.service.ProcessBatch(context.Background(), 10)
	assert.NoError(t, err)
}

func TestQueueService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQueueFixture(t, ctrl)
	f.queue.EXPECT().CancelWaiting(int64(100)).Return(nil)

	assert.NoError(t, f.service.Cancel(100))
}
