package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/pkg/logger"
)

// Envelope is the uniform response wrapper the mobile client expects: every
// body carries a success flag, an optional message and the payload.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

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

// WriteData writes a success envelope around the payload
func (h *BaseHandler) WriteData(w http.ResponseWriter, status int, data interface{}) {
	h.writeJSON(w, status, Envelope{Success: true, Data: data})
}

// WriteAppError writes the error with its own status code and error code
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, appErr *internal.AppError) {
	h.Logger.Error("http error", "status", appErr.StatusCode, "code", appErr.Code, "message", appErr.Message)
	h.writeJSON(w, appErr.StatusCode, Envelope{
		Success: false,
		Message: appErr.GetDetailedMessage(),
		Code:    string(appErr.Code),
	})
}

// WriteError writes a generic error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	h.writeJSON(w, status, Envelope{Success: false, Message: message})
}

// WriteServiceError maps an error from the service layer onto the wire:
// AppErrors keep their status and code, anything else becomes a 500.
func (h *BaseHandler) WriteServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteAppError(w, appErr)
		return
	}
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}

func (h *BaseHandler) writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
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
