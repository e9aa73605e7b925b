// Package handler provides HTTP request handlers for the application.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/zapagenda/zap-confirm/internal/api"
	"github.com/zapagenda/zap-confirm/internal/broker"
	"github.com/zapagenda/zap-confirm/internal/middleware"
	"github.com/zapagenda/zap-confirm/internal/models"
	"github.com/zapagenda/zap-confirm/internal/scheduler"
	"github.com/zapagenda/zap-confirm/internal/service"
	"github.com/zapagenda/zap-confirm/internal/webhook"
)

const (
	errorCodeInvalidTenant           = "INVALID_TENANT_ID"
	errorCodeInvalidBody             = "INVALID_REQUEST_BODY"
	errorCodeSessionNotFound         = "SESSION_NOT_FOUND"
	errorCodeSessionNotConnected     = "SESSION_NOT_CONNECTED"
	errorCodeBrokerUnavailable       = "BROKER_UNAVAILABLE"
	errorCodeMalformedEvent          = "MALFORMED_EVENT"
	errorCodeBatchInFlight           = "BATCH_IN_FLIGHT"
	errorCodeSchedulerAlreadyRunning = "SCHEDULER_ALREADY_RUNNING"
	errorCodeSchedulerNotRunning     = "SCHEDULER_NOT_RUNNING"
)

const (
	schedulerMessageStarted = "Scheduler started successfully"
	schedulerMessageStopped = "Scheduler stopped successfully"
)

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(service *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ConnectSession handles POST /tenants/{tenantId}/session/connect.
func (h *Handler) ConnectSession(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Session.Connect(r.Context(), tenantID)
	if err != nil {
		h.logError(r, "Failed to connect session", err)
		h.sendBrokerError(w, r, err, "Failed to connect session")
		return
	}

	response := api.ConnectResponse{
		SessionID:  result.SessionID,
		Status:     string(result.Status),
		WebhookURL: result.WebhookURL,
	}
	if result.QRCode != "" {
		response.QRCode = &result.QRCode
	}
	if result.Token != "" {
		response.Token = &result.Token
	}

	render.JSON(w, r, response)
}

// DisconnectSession handles POST /tenants/{tenantId}/session/disconnect.
func (h *Handler) DisconnectSession(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	err := h.service.Session.Disconnect(r.Context(), tenantID)
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeSessionNotFound, "No session for tenant")
	case errors.Is(err, service.ErrNoCredential):
		h.sendError(w, r, http.StatusConflict, errorCodeSessionNotConnected, "Session has no broker credential")
	case err != nil:
		h.logError(r, "Failed to disconnect session", err)
		h.sendBrokerError(w, r, err, "Failed to disconnect session")
	default:
		render.JSON(w, r, api.SessionStatusResponse{Status: "disconnected"})
	}
}

// GetSessionStatus handles GET /tenants/{tenantId}/session/status.
func (h *Handler) GetSessionStatus(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	result, err := h.service.Session.Status(r.Context(), tenantID)
	if errors.Is(err, service.ErrSessionNotFound) {
		h.sendError(w, r, http.StatusNotFound, errorCodeSessionNotFound, "No session for tenant")
		return
	}
	if err != nil {
		h.logError(r, "Failed to get session status", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to get session status")
		return
	}

	response := api.SessionStatusResponse{
		SessionID:   result.SessionID,
		Status:      string(result.Status),
		ConnectedAt: result.ConnectedAt,
	}
	if result.PhoneNumber != "" {
		response.PhoneNumber = &result.PhoneNumber
	}
	if result.ProfileName != "" {
		response.ProfileName = &result.ProfileName
	}
	if result.Err != "" {
		response.Error = &result.Err
	}

	render.JSON(w, r, response)
}

// SendMessage handles POST /tenants/{tenantId}/messages/send.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, "Invalid request body")
		return
	}
	if req.Phone == "" || req.Text == "" {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, "phone and text are required")
		return
	}

	messageID, err := h.service.Message.SendDirect(r.Context(), tenantID, req.Phone, req.Text, sendOptions(req.Options))
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		h.sendError(w, r, http.StatusNotFound, errorCodeSessionNotFound, "No session for tenant")
	case errors.Is(err, service.ErrSessionNotConnected):
		h.sendError(w, r, http.StatusConflict, errorCodeSessionNotConnected, "Session is not connected")
	case err != nil:
		h.logError(r, "Failed to send message", err)
		h.sendBrokerError(w, r, err, "Failed to send message")
	default:
		render.JSON(w, r, api.SendMessageResponse{MessageID: messageID})
	}
}

// ReceiveWebhook handles POST /webhook/{tenantId}. Broker events are
// normalized and routed; anything the workflow does not act on is
// acknowledged as ignored so the broker stops retrying.
func (h *Handler) ReceiveWebhook(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, "Failed to read request body")
		return
	}

	event, err := webhook.Normalize(body)
	if errors.Is(err, webhook.ErrMalformedMessage) {
		h.sendError(w, r, http.StatusBadRequest, errorCodeMalformedEvent, "Malformed message payload")
		return
	}
	if err != nil {
		h.sendError(w, r, http.StatusBadRequest, errorCodeMalformedEvent, "Unparseable event payload")
		return
	}

	// The minimal envelope shape can omit the instance name; the
	// webhook URL already pins the tenant, so derive it.
	instance := event.Instance
	if instance == "" {
		instance = models.SessionName(tenantID)
	}

	switch event.Kind {
	case webhook.KindQRUpdated:
		if err := h.service.Session.HandleQRUpdate(r.Context(), instance, event.QR.Base64); err != nil {
			h.logError(r, "Failed to handle qr update", err)
		}
		render.JSON(w, r, api.WebhookResponse{Status: "ok", Action: "qr_updated"})
	case webhook.KindConnectionUpdate:
		if err := h.service.Session.HandleConnectionEvent(r.Context(), instance, event.Connection.State); err != nil {
			h.logError(r, "Failed to handle connection update", err)
		}
		render.JSON(w, r, api.WebhookResponse{Status: "ok", Action: "connection_update"})
	case webhook.KindMessageReceived:
		result, err := h.service.Confirmation.HandleInbound(r.Context(), tenantID, event.Message)
		if err != nil {
			h.logError(r, "Failed to handle inbound message", err)
			h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to process message")
			return
		}
		render.JSON(w, r, api.WebhookResponse{Status: "ok", Action: string(result.Action)})
	default:
		render.JSON(w, r, api.WebhookResponse{Status: "ok", Action: "ignored"})
	}
}

// GetMessages handles GET /tenants/{tenantId}/messages.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := h.tenantID(w, r)
	if !ok {
		return
	}

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 20)

	result, err := h.service.Message.ListMessages(tenantID, page, limit)
	if err != nil {
		h.logError(r, "Failed to list messages", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to retrieve messages")
		return
	}

	render.JSON(w, r, result)
}

// ProcessQueue handles POST /queue/process, a manual batch trigger.
func (h *Handler) ProcessQueue(w http.ResponseWriter, r *http.Request) {
	var req api.ProcessQueueRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidBody, "Invalid request body")
			return
		}
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	result, err := h.service.Queue.ProcessBatch(r.Context(), req.Limit)
	if errors.Is(err, service.ErrBatchInFlight) {
		h.sendError(w, r, http.StatusConflict, errorCodeBatchInFlight, "A batch is already being processed")
		return
	}
	if err != nil {
		h.logError(r, "Failed to process queue", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to process queue")
		return
	}

	render.JSON(w, r, api.ProcessQueueResponse{
		Processed: result.Processed,
		Failed:    result.Failed,
	})
}

// StartScheduler handles POST /scheduler/start.
func (h *Handler) StartScheduler(w http.ResponseWriter, r *http.Request) {
	err := h.service.Scheduler.Start()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerAlreadyRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerAlreadyRunning, "Scheduler is already running")
			return
		}

		h.logError(r, "Failed to start scheduler", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to start scheduler")
		return
	}

	render.JSON(w, r, api.SchedulerResponse{
		Status:  api.SchedulerResponseStatusStarted,
		Message: schedulerMessageStarted,
	})
}

// StopScheduler handles POST /scheduler/stop.
func (h *Handler) StopScheduler(w http.ResponseWriter, r *http.Request) {
	err := h.service.Scheduler.Stop()
	if err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.sendError(w, r, http.StatusConflict, errorCodeSchedulerNotRunning, "Scheduler is not running")
			return
		}

		h.logError(r, "Failed to stop scheduler", err)
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, "Failed to stop scheduler")
		return
	}

	render.JSON(w, r, api.SchedulerResponse{
		Status:  api.SchedulerResponseStatusStopped,
		Message: schedulerMessageStopped,
	})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now(),
	}

	if health.SchedulerStatus != "" {
		status := health.SchedulerStatus
		response.SchedulerStatus = &status
	}
	if health.DatabaseStatus != "" {
		status := health.DatabaseStatus
		response.DatabaseStatus = &status
	}
	if health.RedisStatus != "" {
		status := health.RedisStatus
		response.RedisStatus = &status
	}
	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}
	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	if health.Status == api.Unhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

// tenantID parses the {tenantId} URL parameter, answering 400 itself on
// failure.
func (h *Handler) tenantID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "tenantId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.sendError(w, r, http.StatusBadRequest, errorCodeInvalidTenant, "Invalid tenant id")
		return 0, false
	}
	return id, true
}

// sendBrokerError maps gateway failures onto 502/503 instead of a
// generic 500.
func (h *Handler) sendBrokerError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, broker.ErrUnavailable):
		h.sendError(w, r, http.StatusServiceUnavailable, errorCodeBrokerUnavailable, message)
	case errors.Is(err, broker.ErrBadGateway), errors.Is(err, broker.ErrMisconfigured):
		h.sendError(w, r, http.StatusBadGateway, errorCodeBrokerUnavailable, message)
	default:
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, message)
	}
}

func (h *Handler) logError(r *http.Request, msg string, err error) {
	h.logger.Error(msg,
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err))
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:   errorCode,
		Message: message,
		Timestamp: func() *time.Time {
			t := time.Now()
			return &t
		}(),
	})
}

func sendOptions(opts *api.SendMessageOptions) *broker.SendOptions {
	if opts == nil {
		return nil
	}

	out := &broker.SendOptions{
		LinkPreview: opts.LinkPreview,
		Mentions:    opts.Mentions,
	}
	if opts.DelayMs != nil {
		out.DelayMs = *opts.DelayMs
	}
	if opts.QuotedID != nil {
		out.QuotedID = *opts.QuotedID
	}
	return out
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
