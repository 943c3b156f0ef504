package policy

import (
	"net/http"
	"strconv"

	"github.com/frahmantamala/hr-assistant/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListPolicies(category string) ([]*Policy, error)
	GetByID(id int64) (*Policy, error)
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

// GetPolicies serves the Policy Center listing, optionally filtered by
// category.
func (h *Handler) GetPolicies(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	policies, err := h.Service.ListPolicies(category)
	if err != nil {
		h.Logger.Error("GetPolicies: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get policies")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"policies": policies,
	})
}

func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid policy ID")
		return
	}

	p, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, p)
}
