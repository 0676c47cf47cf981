package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tippool/internal/domain/stats"
	"tippool/internal/transport/http/api"
	"tippool/internal/transport/http/middleware"
)

type Handler struct {
	service *stats.Service
}

func NewHandler(service *stats.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/statistics", h.handleStatistics)
}

func (h *Handler) handleStatistics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Statistics(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "statistics_failed", "failed to compute statistics", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}
