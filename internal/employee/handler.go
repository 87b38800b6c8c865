package employee

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/internal/session"
	"github.com/frahmantamala/hrms-client/internal/transport"
	"github.com/frahmantamala/hrms-client/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) GetByEmpNo(w http.ResponseWriter, r *http.Request) {
	empNo := chi.URLParam(r, "empNo")
	if empNo == "" {
		h.WriteError(w, http.StatusBadRequest, "employee number is required")
		return
	}

	record, err := h.Service.GetEmployee(r.Context(), empNo)
	if err != nil {
		h.Logger.Error("failed to load employee", "emp_no", empNo, "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, record)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	var patch session.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateProfile(r.Context(), userID, patch)
	if err != nil {
		h.Logger.Error("failed to update profile", "user_id", userID, "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, updated)
}

// CCLVerifiers lists users a compensatory claim can name as its assigner.
func (h *Handler) CCLVerifiers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListVerifiers(r.Context())
	if err != nil {
		h.Logger.Error("failed to list ccl verifiers", "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, users)
}
