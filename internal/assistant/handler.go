package assistant

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/hr-assistant/internal/auth"
	"github.com/frahmantamala/hr-assistant/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Chat(ctx context.Context, employeeID string, dto ChatMessageDTO) Response
	History(employeeID string) (*HistoryResponseDTO, error)
	SessionHistory(employeeID, sessionID string) (*HistoryResponseDTO, error)
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

// Chat handles POST /api/v1/chat. The response is always 200 with a
// well-formed body; only malformed input or a missing session is rejected.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto ChatMessageDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Chat: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := h.Service.Chat(r.Context(), emp.ID, dto)

	h.WriteJSON(w, http.StatusOK, response)
}

// GetHistory handles GET /api/v1/chat/history.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	history, err := h.Service.History(emp.ID)
	if err != nil {
		h.Logger.Error("GetHistory: service error", "error", err, "employee_id", emp.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, history)
}

// GetSessionHistory handles GET /api/v1/chat/sessions/{session_id}.
func (h *Handler) GetSessionHistory(w http.ResponseWriter, r *http.Request) {
	emp, ok := auth.EmployeeFromContext(r.Context())
	if !ok || emp == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		h.WriteError(w, http.StatusBadRequest, "session id is required")
		return
	}

	history, err := h.Service.SessionHistory(emp.ID, sessionID)
	if err != nil {
		h.Logger.Error("GetSessionHistory: service error", "error", err, "session_id", sessionID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, history)
}
