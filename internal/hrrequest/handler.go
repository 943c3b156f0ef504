package hrrequest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/hr-assistant/internal/auth"
	"github.com/frahmantamala/hr-assistant/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Submit(employeeID string, dto SubmitRequestDTO) (*Request, error)
	GetByID(id int64, employeeID string, isManager bool) (*Request, error)
	ListForEmployee(employeeID string, limit, offset int) ([]*Request, error)
	ListPending(limit, offset int) ([]*Request, error)
	Approve(id int64, approverID string) (*Request, error)
	Reject(id int64, rejecterID string, dto RejectRequestDTO) (*Request, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SubmitRequest: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Service.Submit(emp.ID, dto)
	if err != nil {
		h.Logger.Error("SubmitRequest: service error", "error", err, "employee_id", emp.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, request)
}

func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request ID")
		return
	}

	request, err := h.Service.GetByID(id, emp.ID, emp.IsManager)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, request)
}

func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, offset := paginationParams(r)

	requests, err := h.Service.ListForEmployee(emp.ID, limit, offset)
	if err != nil {
		h.Logger.Error("ListRequests: service error", "error", err, "employee_id", emp.ID)
		h.WriteError(w, http.StatusInternalServerError, "failed to list requests")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
		"limit":    limit,
		"offset":   offset,
	})
}

func (h *Handler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginationParams(r)

	requests, err := h.Service.ListPending(limit, offset)
	if err != nil {
		h.Logger.Error("ListPendingRequests: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list pending requests")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"requests": requests,
		"limit":    limit,
		"offset":   offset,
	})
}

func (h *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request ID")
		return
	}

	request, err := h.Service.Approve(id, emp.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, request)
}

func (h *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request ID")
		return
	}

	var dto RejectRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.Service.Reject(id, emp.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, request)
}

func paginationParams(r *http.Request) (limit, offset int) {
	limit = 20
	offset = 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}
