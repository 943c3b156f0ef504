package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-assistant/internal"
	"github.com/frahmantamala/hr-assistant/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]interface{}{
		"code":    status,
		"message": message,
	}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// HandleServiceError maps service-layer errors to HTTP responses. Unknown
// errors become 500 without leaking internals.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	var appErr *internal.AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status == 0 {
			status = statusForErrorType(appErr.Type)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		errorResp := map[string]interface{}{
			"code":       status,
			"error_code": appErr.Code,
			"message":    appErr.GetDetailedMessage(),
		}
		if encErr := json.NewEncoder(w).Encode(errorResp); encErr != nil {
			h.Logger.Error("failed to encode error response", "error", encErr)
		}
		return
	}

	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}

func statusForErrorType(t internal.ErrorType) int {
	switch t {
	case internal.ErrorTypeValidation:
		return http.StatusBadRequest
	case internal.ErrorTypeNotFound:
		return http.StatusNotFound
	case internal.ErrorTypeUnauthorized:
		return http.StatusUnauthorized
	case internal.ErrorTypeForbidden:
		return http.StatusForbidden
	case internal.ErrorTypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
