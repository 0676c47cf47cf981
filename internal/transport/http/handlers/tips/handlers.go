package tips

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tippool/internal/domain/tips"
	"tippool/internal/transport/http/api"
	"tippool/internal/transport/http/middleware"
	"tippool/internal/transport/http/shared"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type Handler struct {
	service *tips.Service
}

func NewHandler(service *tips.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/tip-calculations", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{calculationID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Delete("/", h.handleDelete)
		})
	})
}

type createRequest struct {
	TotalTips    float64            `json:"total_tips"`
	Currency     string             `json:"currency"`
	WorkSessions []tips.WorkSession `json:"work_sessions"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	calc, err := h.service.Create(r.Context(), payload.TotalTips, payload.Currency, payload.WorkSessions)
	if err != nil {
		h.fail(w, r, err, "calculation_create_failed", "failed to create tip calculation")
		return
	}

	api.Created(w, calc, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	pagination := shared.ParsePagination(r, defaultListLimit, maxListLimit)
	list, err := h.service.List(r.Context(), pagination.Limit)
	if err != nil {
		h.fail(w, r, err, "calculation_list_failed", "failed to list tip calculations")
		return
	}
	if list == nil {
		list = []tips.Calculation{}
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	calc, err := h.service.Get(r.Context(), chi.URLParam(r, "calculationID"))
	if err != nil {
		h.fail(w, r, err, "calculation_get_failed", "failed to get tip calculation")
		return
	}
	api.Success(w, calc, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "calculationID")); err != nil {
		h.fail(w, r, err, "calculation_delete_failed", "failed to delete tip calculation")
		return
	}
	api.Success(w, map[string]string{"message": "tip calculation deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, tips.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "tip calculation not found", requestID)
	case errors.Is(err, tips.ErrZeroTotalHours):
		api.Fail(w, http.StatusBadRequest, "zero_total_hours", "total hours cannot be zero", requestID)
	case errors.Is(err, tips.ErrNegativeTips):
		api.Fail(w, http.StatusBadRequest, "negative_tips", "total tips cannot be negative", requestID)
	case errors.Is(err, tips.ErrNegativeHours):
		api.Fail(w, http.StatusBadRequest, "negative_hours", "hours worked cannot be negative", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, requestID)
	}
}
