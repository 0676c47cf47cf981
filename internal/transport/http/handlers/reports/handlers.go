package reports

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tippool/internal/domain/reports"
	"tippool/internal/domain/tips"
	"tippool/internal/transport/http/api"
	"tippool/internal/transport/http/middleware"
)

type Handler struct {
	service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/tip-calculations/{calculationID}/report", h.handlePayoutSheet)
}

func (h *Handler) handlePayoutSheet(w http.ResponseWriter, r *http.Request) {
	path, err := h.service.GeneratePayoutSheet(r.Context(), chi.URLParam(r, "calculationID"))
	if err != nil {
		if errors.Is(err, tips.ErrNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "tip calculation not found", middleware.GetRequestID(r.Context()))
			return
		}
		api.Fail(w, http.StatusInternalServerError, "report_failed", "failed to generate payout sheet", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}
