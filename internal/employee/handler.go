package employee

import (
	"net/http"
	"strconv"

	"github.com/frahmantamala/hr-assistant/internal/auth"
	"github.com/frahmantamala/hr-assistant/internal/transport"
)

type ServiceAPI interface {
	GetProfile(employeeID string) (*Profile, error)
	GetVacationBalance(employeeID string) (*Balance, error)
	ListSalaryPayments(employeeID string, limit int) ([]*Payment, error)
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

func (h *Handler) GetCurrentEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.Service.GetProfile(emp.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) GetVacationBalance(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	balance, err := h.Service.GetVacationBalance(emp.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, balance)
}

func (h *Handler) GetSalaryPayments(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := 12
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	payments, err := h.Service.ListSalaryPayments(emp.ID, limit)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"payments": payments,
	})
}
