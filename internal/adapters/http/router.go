package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/viralforge/mesh/services/financial-rails/M04-order-service/internal/mediator"
)

type Handler struct {
	mediator      *mediator.Mediator
	logger        *slog.Logger
	developerMode bool
}

func NewHandler(m *mediator.Mediator, logger *slog.Logger, developerMode bool) *Handler {
	return &Handler{mediator: m, logger: logger, developerMode: developerMode}
}

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(handler.recoverMiddleware)
	r.Use(handler.loggingMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ok") })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ready") })

	r.Route("/v1", func(r chi.Router) {
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", handler.filterOrders)
			r.Get("/{order_id}", handler.getOrder)

			r.Group(func(r chi.Router) {
				r.Use(operatorMiddleware)
				r.Post("/", handler.createOrder)
				r.Post("/{order_id}/submit", handler.submitOrder)
				r.Delete("/{order_id}", handler.deleteOrder)
			})
		})
	})
	return r
}
