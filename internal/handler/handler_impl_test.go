package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/api"
	"github.com/zapagenda/zap-confirm/internal/handler"
	"github.com/zapagenda/zap-confirm/internal/models"
	"github.com/zapagenda/zap-confirm/internal/scheduler"
	"github.com/zapagenda/zap-confirm/internal/service"
	servicemocks "github.com/zapagenda/zap-confirm/internal/service/mocks"
)

type handlerFixture struct {
	session      *servicemocks.MockSessionService
	confirmation *servicemocks.MockConfirmationService
	queue        *servicemocks.MockQueueService
	message      *servicemocks.MockMessageService
	scheduler    *servicemocks.MockSchedulerService
	health       *servicemocks.MockHealthService
	router       chi.Router
}

func newHandlerFixture(t *testing.T, ctrl *gomock.Controller) *handlerFixture {
	t.Helper()

	f := &handlerFixture{
		session:      servicemocks.NewMockSessionService(ctrl),
		confirmation: servicemocks.NewMockConfirmationService(ctrl),
		queue:        servicemocks.NewMockQueueService(ctrl),
		message:      servicemocks.NewMockMessageService(ctrl),
		scheduler:    servicemocks.NewMockSchedulerService(ctrl),
		health:       servicemocks.NewMockHealthService(ctrl),
	}

	svc := &service.Service{
		Session:      f.session,
		Confirmation: f.confirmation,
		Queue:        f.queue,
		Message:      f.message,
		Scheduler:    f.scheduler,
		Health:       f.health,
	}
	h := handler.NewHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/tenants/{tenantId}/session/connect", h.ConnectSession)
	r.Post("/tenants/{tenantId}/session/disconnect", h.DisconnectSession)
	r.Get("/tenants/{tenantId}/session/status", h.GetSessionStatus)
	r.Post("/tenants/{tenantId}/messages/send", h.SendMessage)
	r.Get("/tenants/{tenantId}/messages", h.GetMessages)
	r.Post("/webhook/{tenantId}", h.ReceiveWebhook)
	r.Post("/queue/process", h.ProcessQueue)
	r.Post("/scheduler/start", h.StartScheduler)
	r.Post("/scheduler/stop", h.StopScheduler)
	r.Get("/health", h.HealthCheck)
	f.router = r

	return f
}

func (f *handlerFixture) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ConnectSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.session.EXPECT().Connect(gomock.Any(), int64(42)).Return(&service.ConnectResult{
		SessionID:  7,
		Status:     models.SessionStatusConnecting,
		QRCode:     "qr-base64",
		WebhookURL: "https://confirm.example.com/webhook/42",
		Token:      "tok",
	}, nil)

	rec := f.do(http.MethodPost, "/tenants/42/session/connect", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ConnectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.SessionID)
	assert.Equal(t, "connecting", resp.Status)
	require.NotNil(t, resp.QRCode)
	assert.Equal(t, "qr-base64", *resp.QRCode)
}

func TestHandler_ConnectSession_InvalidTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	rec := f.do(http.MethodPost, "/tenants/abc/session/connect", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(http.MethodPost, "/tenants/0/session/connect", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetSessionStatus_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)
	f.session.EXPECT().Status(gomock.Any(), int64(42)).Return(nil, service.ErrSessionNotFound)

	rec := f.do(http.MethodGet, "/tenants/42/session/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.message.EXPECT().
		SendDirect(gomock.Any(), int64(42), "11987654321", "olá", gomock.Nil()).
		Return("msg-1", nil)

	body, _ := json.Marshal(api.SendMessageRequest{Phone: "11987654321", Text: "olá"})
	rec := f.do(http.MethodPost, "/tenants/42/messages/send", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.SendMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "msg-1", resp.MessageID)
}

func TestHandler_SendMessage_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	body, _ := json.Marshal(api.SendMessageRequest{Phone: "", Text: "olá"})
	rec := f.do(http.MethodPost, "/tenants/42/messages/send", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SendMessage_SessionNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.message.EXPECT().
		SendDirect(gomock.Any(), int64(42), "11987654321", "olá", gomock.Nil()).
		Return("", service.ErrSessionNotConnected)

	body, _ := json.Marshal(api.SendMessageRequest{Phone: "11987654321", Text: "olá"})
	rec := f.do(http.MethodPost, "/tenants/42/messages/send", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_ReceiveWebhook_Message(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.confirmation.EXPECT().
		HandleInbound(gomock.Any(), int64(42), gomock.Any()).
		Return(&service.ConfirmationResult{Action: service.ActionConfirm, StatusUpdated: true}, nil)

	payload := []byte(`{
		"event": "messages.upsert",
		"instance": "tenant_42",
		"data": {
			"key": {"id": "3EB0", "remoteJid": "5511987654321@s.whatsapp.net", "fromMe": false},
			"message": {"conversation": "1"}
		}
	}`)
	rec := f.do(http.MethodPost, "/webhook/42", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "confirm", resp.Action)
}

func TestHandler_ReceiveWebhook_ConnectionUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.session.EXPECT().
		HandleConnectionEvent(gomock.Any(), "tenant_42", "open").
		Return(nil)

	payload := []byte(`{
		"event": "connection.update",
		"instance": "tenant_42",
		"data": {"state": "open"}
	}`)
	rec := f.do(http.MethodPost, "/webhook/42", payload)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ReceiveWebhook_MinimalQRUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	// The minimal envelope carries no instance name; the tenant from
	// the URL supplies it.
	f.session.EXPECT().
		HandleQRUpdate(gomock.Any(), "tenant_42", "qr-base64").
		Return(nil)

	payload := []byte(`{
		"event": "qrcode.updated",
		"data": {"qrcode": {"base64": "qr-base64"}}
	}`)
	rec := f.do(http.MethodPost, "/webhook/42", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "qr_updated", resp.Action)
}

func TestHandler_ReceiveWebhook_MinimalConnectionUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.session.EXPECT().
		HandleConnectionEvent(gomock.Any(), "tenant_42", "close").
		Return(nil)

	payload := []byte(`{"event": "connection.update", "data": {"state": "close"}}`)
	rec := f.do(http.MethodPost, "/webhook/42", payload)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ReceiveWebhook_UnknownEventIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	payload := []byte(`{"event": "presence.update", "instance": "tenant_42", "data": {}}`)
	rec := f.do(http.MethodPost, "/webhook/42", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ignored", resp.Action)
}

func TestHandler_ReceiveWebhook_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	rec := f.do(http.MethodPost, "/webhook/42", []byte("not json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ProcessQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.queue.EXPECT().ProcessBatch(gomock.Any(), 5).
		Return(&service.BatchResult{Processed: 3, Failed: 1}, nil)

	body, _ := json.Marshal(api.ProcessQueueRequest{Limit: 5})
	rec := f.do(http.MethodPost, "/queue/process", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.ProcessQueueResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Processed)
	assert.Equal(t, 1, resp.Failed)
}

func TestHandler_ProcessQueue_BatchInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.queue.EXPECT().ProcessBatch(gomock.Any(), 10).
		Return(nil, service.ErrBatchInFlight)

	rec := f.do(http.MethodPost, "/queue/process", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_SchedulerControls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.scheduler.EXPECT().Start().Return(nil)
	rec := f.do(http.MethodPost, "/scheduler/start", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	f.scheduler.EXPECT().Start().Return(scheduler.ErrSchedulerAlreadyRunning)
	rec = f.do(http.MethodPost, "/scheduler/start", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	f.scheduler.EXPECT().Stop().Return(scheduler.ErrSchedulerNotRunning)
	rec = f.do(http.MethodPost, "/scheduler/stop", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_HealthCheck_Unhealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.health.EXPECT().GetHealth().Return(&service.HealthStatus{
		Status:          api.Unhealthy,
		SchedulerStatus: api.HealthResponseSchedulerStatusStopped,
		DatabaseStatus:  api.HealthResponseDatabaseStatusDisconnected,
		RedisStatus:     api.HealthResponseRedisStatusConnected,
	})

	rec := f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, api.Unhealthy, resp.Status)
}
