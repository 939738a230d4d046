package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"launchpro/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign use case to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// CampaignUseCase implementation and a logger. The returned Handler
// registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/campaigns", h.handleSubmitCampaign)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Delete("/campaigns/{id}/queue", h.handleWithdraw)
		r.Post("/campaigns/{id}/resubmit", h.handleResubmit)
		r.Post("/campaigns/{id}/design-complete", h.handleDesignComplete)
		r.Post("/campaigns/{id}/article-approval", h.handleArticleApproval)
		r.Post("/queue/advance", h.handleAdvanceQueue)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
