package employees

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tippool/internal/domain/employees"
	"tippool/internal/transport/http/api"
	"tippool/internal/transport/http/middleware"
)

type Handler struct {
	service *employees.Service
}

func NewHandler(service *employees.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Route("/{employeeID}", func(r chi.Router) {
			r.Get("/", h.handleGet)
			r.Put("/", h.handleUpdate)
			r.Delete("/", h.handleDelete)
		})
	})
}

type createRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload createRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.service.Create(r.Context(), payload.Name, payload.Position)
	if err != nil {
		h.fail(w, r, err, "employee_create_failed", "failed to create employee")
		return
	}

	api.Created(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.fail(w, r, err, "employee_list_failed", "failed to list employees")
		return
	}
	if list == nil {
		list = []employees.Employee{}
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	emp, err := h.service.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		h.fail(w, r, err, "employee_get_failed", "failed to get employee")
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch employees.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	emp, err := h.service.Update(r.Context(), chi.URLParam(r, "employeeID"), patch)
	if err != nil {
		h.fail(w, r, err, "employee_update_failed", "failed to update employee")
		return
	}
	api.Success(w, emp, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
		h.fail(w, r, err, "employee_delete_failed", "failed to delete employee")
		return
	}
	api.Success(w, map[string]string{"message": "employee deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	requestID := middleware.GetRequestID(r.Context())
	switch {
	case errors.Is(err, employees.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
	case errors.Is(err, employees.ErrEmptyPatch):
		api.Fail(w, http.StatusBadRequest, "empty_update", "no fields provided for update", requestID)
	case errors.Is(err, employees.ErrEmptyName):
		api.Fail(w, http.StatusBadRequest, "invalid_name", "employee name is required", requestID)
	default:
		api.Fail(w, http.StatusInternalServerError, code, message, requestID)
	}
}
