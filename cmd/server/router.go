package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapagenda/zap-confirm/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Route("/tenants/{tenantId}", func(r chi.Router) {
		r.Post("/session/connect", h.ConnectSession)
		r.Post("/session/disconnect", h.DisconnectSession)
		r.Get("/session/status", h.GetSessionStatus)
		r.Post("/messages/send", h.SendMessage)
		r.Get("/messages", h.GetMessages)
	})

	r.Post("/webhook/{tenantId}", h.ReceiveWebhook)

	r.Post("/queue/process", h.ProcessQueue)
	r.Post("/scheduler/start", h.StartScheduler)
	r.Post("/scheduler/stop", h.StopScheduler)

	r.Get("/health", h.HealthCheck)

	return r
}
