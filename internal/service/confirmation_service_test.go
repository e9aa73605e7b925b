package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	brokermocks "github.com/zapagenda/zap-confirm/internal/broker/mocks"
	"github.com/zapagenda/zap-confirm/internal/models"
	"github.com/zapagenda/zap-confirm/internal/repository"
	"github.com/zapagenda/zap-confirm/internal/repository/mocks"
	"github.com/zapagenda/zap-confirm/internal/service"
	servicemocks "github.com/zapagenda/zap-confirm/internal/service/mocks"
	"github.com/zapagenda/zap-confirm/internal/webhook"
)

type confirmationFixture struct {
	repo        *mocks.MockRepository
	appointment *mocks.MockAppointmentRepository
	template    *mocks.MockTemplateRepository
	session     *mocks.MockSessionRepository
	messageLog  *mocks.MockMessageLogRepository
	broker      *brokermocks.MockClient
	queue       *servicemocks.MockQueueService
	service     service.ConfirmationService
}

func newConfirmationFixture(t *testing.T, ctrl *gomock.Controller) *confirmationFixture {
	t.Helper()

	f := &confirmationFixture{
		repo:        mocks.NewMockRepository(ctrl),
		appointment: mocks.NewMockAppointmentRepository(ctrl),
		template:    mocks.NewMockTemplateRepository(ctrl),
		session:     mocks.NewMockSessionRepository(ctrl),
		messageLog:  mocks.NewMockMessageLogRepository(ctrl),
		broker:      brokermocks.NewMockClient(ctrl),
		queue:       servicemocks.NewMockQueueService(ctrl),
	}

	f.repo.EXPECT().Appointment().Return(f.appointment).AnyTimes()
	f.repo.EXPECT().Template().Return(f.template).AnyTimes()
	f.repo.EXPECT().Session().Return(f.session).AnyTimes()
	f.repo.EXPECT().MessageLog().Return(f.messageLog).AnyTimes()

	// Unreachable redis: dedupe degrades to pass-through, which is what
	// these tests want.
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:9999"})

	f.service = service.NewConfirmationService(f.repo, f.broker, f.queue, redisClient, zap.NewNop())

	return f
}

func inboundReply(text string) *webhook.MessageReceived {
	return &webhook.MessageReceived{
		MessageID: "3EB0-TEST",
		RemoteJID: "5511987654321@s.whatsapp.net",
		PushName:  "Maria",
		Text:      text,
	}
}

func pendingAppointment() *models.PendingAppointment {
	return &models.PendingAppointment{
		Appointment: models.Appointment{
			ID:        100,
			TenantID:  1,
			PatientID: 50,
			Date:      time.Now().Add(24 * time.Hour),
			Time:      "14:30",
		},
		PatientName:   "Maria",
		PatientPhone1: sql.NullString{String: "(11) 98765-4321", Valid: true},
	}
}

func TestConfirmationService_HandleInbound_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	f.appointment.EXPECT().
		FindPendingBySuffix(int64(1), "87654321", gomock.Any()).
		Return(pendingAppointment(), nil)
	f.messageLog.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *models.MessageLog) error {
		assert.Equal(t, models.MessageDirectionReceived, entry.Direction)
		assert.Equal(t, "1", entry.Content)
		return nil
	})
	f.appointment.EXPECT().
		UpdateStatusIfPending(int64(100), models.AppointmentStatusConfirmed).
		Return(true, nil)
	f.template.EXPECT().
		GetActiveByType(int64(1), models.TemplateTypeConfirm).
		Return(&models.MessageTemplate{ID: 5, Type: models.TemplateTypeConfirm, Active: true}, nil)
	f.queue.EXPECT().Enqueue(int64(100), int64(1), int64(5)).Return(nil)
	f.queue.EXPECT().ProcessItem(gomock.Any(), int64(100)).Return(nil)

	result, err := f.service.HandleInbound(context.Background(), 1, inboundReply("1"))
	require.NoError(t, err)
	assert.Equal(t, service.ActionConfirm, result.Action)
	assert.Equal(t, int64(100), result.AppointmentID)
	assert.True(t, result.StatusUpdated)
	assert.True(t, result.MessageSent)
}

func TestConfirmationService_HandleInbound_Reschedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	f.appointment.EXPECT().
		FindPendingBySuffix(int64(1), "87654321", gomock.Any()).
		Return(pendingAppointment(), nil)
	f.messageLog.EXPECT().Append(gomock.Any()).Return(nil)
	f.appointment.EXPECT().
		UpdateStatusIfPending(int64(100), models.AppointmentStatusRescheduleRequested).
		Return(true, nil)
	f.template.EXPECT().
		GetActiveByType(int64(1), models.TemplateTypeReschedule).
		Return(&models.MessageTemplate{ID: 6, Type: models.TemplateTypeReschedule, Active: true}, nil)
	f.queue.EXPECT().Enqueue(int64(100), int64(1), int64(6)).Return(nil)
	f.queue.EXPECT().ProcessItem(gomock.Any(), int64(100)).Return(nil)

	result, err := f.service.HandleInbound(context.Background(), 1, inboundReply("2"))
	require.NoError(t, err)
	assert.Equal(t, service.ActionReschedule, result.Action)
	assert.True(t, result.StatusUpdated)
	assert.True(t, result.MessageSent)
}

func TestConfirmationService_HandleInbound_CorrelatesFromYesterdayMidnight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	// An appointment dated yesterday must still correlate, so the
	// lookup bound has to be yesterday at midnight, not now minus a
	// fixed duration.
	f.appointment.EXPECT().
		FindPendingBySuffix(int64(1), "87654321", gomock.Any()).
		DoAndReturn(func(tenantID int64, suffix string, since time.Time) (*models.PendingAppointment, error) {
			yesterday := time.Now().AddDate(0, 0, -1)
			assert.Equal(t, yesterday.Year(), since.Year())
			assert.Equal(t, yesterday.YearDay(), since.YearDay())
			assert.Zero(t, since.Hour())
			assert.Zero(t, since.Minute())
			assert.Zero(t, since.Second())
			return nil, repository.ErrNotFound
		})

	result, err := f.service.HandleInbound(context.Background(), 1, inboundReply("1"))
	require.NoError(t, err)
	assert.Equal(t, service.ActionIgnore, result.Action)
}

func TestConfirmationService_HandleInbound_NoPendingAppointment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	f.appointment.EXPECT().
		FindPendingBySuffix(int64(1), "87654321", gomock.Any()).
		Return(nil, repository.ErrNotFound)

	result, err := f.service.HandleInbound(context.Background(), 1, inboundReply("1"))
	require.NoError(t, err)
	assert.Equal(t, service.ActionIgnore, result.Action)
	assert.False(t, result.StatusUpdated)
	assert.False(t, result.MessageSent)
}

func TestConfirmationService_HandleInbound_FreeTextIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	f.appointment.EXPECT().
		FindPendingBySuffix(int64(1), "87654321", gomock.Any()).
		Return(pendingAppointment(), nil)

	result, err := f.service.HandleInbound(context.Background(), 1, inboundReply("obrigada!"))
	require.NoError(t, err)
	assert.Equal(t, service.ActionIgnore, result.Action)
	assert.False(t, result.StatusUpdated)
}

func TestConfirmationService_HandleInbound_LateReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	f.appointment.EXPECT().
		FindPendingBySuffix(int64(1), "87654321", gomock.Any()).
		Return(pendingAppointment(), nil)
	f.messageLog.EXPECT().Append(gomock.Any()).Return(nil)
	// A concurrent reply won the conditional update.
	f.appointment.EXPECT().
		UpdateStatusIfPending(int64(100), models.AppointmentStatusConfirmed).
		Return(false, nil)

	result, err := f.service.HandleInbound(context.Background(), 1, inboundReply("1"))
	require.NoError(t, err)
	assert.Equal(t, service.ActionConfirm, result.Action)
	assert.False(t, result.StatusUpdated)
	assert.False(t, result.MessageSent)
	assert.Equal(t, "appointment already resolved", result.Detail)
}

func TestConfirmationService_HandleInbound_MissingTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	f.appointment.EXPECT().
		FindPendingBySuffix(int64(1), "87654321", gomock.Any()).
		Return(pendingAppointment(), nil)
	f.messageLog.EXPECT().Append(gomock.Any()).Return(nil)
	f.appointment.EXPECT().
		UpdateStatusIfPending(int64(100), models.AppointmentStatusConfirmed).
		Return(true, nil)
	f.template.EXPECT().
		GetActiveByType(int64(1), models.TemplateTypeConfirm).
		Return(nil, repository.ErrNotFound)

	result, err := f.service.HandleInbound(context.Background(), 1, inboundReply("1"))
	require.NoError(t, err)
	// The status change stands even though no acknowledgment went out.
	assert.True(t, result.StatusUpdated)
	assert.False(t, result.MessageSent)
	assert.NotEmpty(t, result.Detail)
}

func TestConfirmationService_HandleInbound_Fallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	f.appointment.EXPECT().
		FindPendingBySuffix(int64(1), "87654321", gomock.Any()).
		Return(pendingAppointment(), nil)
	f.session.EXPECT().GetByTenantID(int64(1)).Return(&models.Session{
		ID: 1, TenantID: 1, Name: "tenant_1",
		Status: models.SessionStatusConnected,
		APIKey: sql.NullString{String: "instance-key", Valid: true},
	}, nil)
	f.broker.EXPECT().
		SendText(gomock.Any(), "tenant_1", "instance-key", "5511987654321", gomock.Any(), gomock.Nil()).
		Return("msg-2", nil)
	f.messageLog.EXPECT().Append(gomock.Any()).DoAndReturn(func(entry *models.MessageLog) error {
		assert.Equal(t, models.MessageDirectionSent, entry.Direction)
		return nil
	})

	result, err := f.service.HandleInbound(context.Background(), 1, inboundReply("3"))
	require.NoError(t, err)
	assert.Equal(t, service.ActionFallback, result.Action)
	assert.False(t, result.StatusUpdated)
	assert.True(t, result.MessageSent)
}

func TestConfirmationService_HandleInbound_FallbackWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	f.appointment.EXPECT().
		FindPendingBySuffix(int64(1), "87654321", gomock.Any()).
		Return(pendingAppointment(), nil)
	f.session.EXPECT().GetByTenantID(int64(1)).Return(nil, repository.ErrNotFound)

	result, err := f.service.HandleInbound(context.Background(), 1, inboundReply("99"))
	require.NoError(t, err)
	assert.Equal(t, service.ActionFallback, result.Action)
	assert.False(t, result.MessageSent)
	assert.NotEmpty(t, result.Detail)
}

func TestConfirmationService_HandleInbound_ShortSenderIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newConfirmationFixture(t, ctrl)

	msg := inboundReply("1")
	msg.RemoteJID = "1234@s.whatsapp.net"

	result, err := f.service.HandleInbound(context.Background(), 1, msg)
	require.NoError(t, err)
	assert.Equal(t, service.ActionIgnore, result.Action)
}
