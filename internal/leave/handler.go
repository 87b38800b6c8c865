package leave

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/internal/api"
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

// caller resolves the authenticated employee, writing a 401 when absent.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return "", false
	}
	return userID, true
}

func (h *Handler) MyLeaves(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	leaves, err := h.Service.MyLeaves(r.Context(), employeeID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, leaves)
}

func (h *Handler) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	leaves, err := h.Service.PendingApprovals(r.Context(), employeeID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, leaves)
}

func (h *Handler) AllLeaves(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	leaves, err := h.Service.AllLeaves(r.Context(), filters)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, leaves)
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req api.ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Apply(r.Context(), employeeID, req)
	if err != nil {
		h.Logger.Error("failed to apply leave", "employee_id", employeeID, "error", err)
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, created)
}

func (h *Handler) TakeAction(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.caller(w, r)
	if !ok {
		return
	}

	leaveID := chi.URLParam(r, "id")

	var req api.LeaveActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.TakeAction(r.Context(), actorID, leaveID, req)
	if err != nil {
		h.Logger.Error("failed to action leave", "leave_id", leaveID, "actor_id", actorID, "error", err)
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, updated)
}

func (h *Handler) ApprovedRecords(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employeeId")
	date := r.URL.Query().Get("date")
	if employeeID == "" || date == "" {
		h.WriteError(w, http.StatusBadRequest, "employeeId and date are required")
		return
	}

	leaves, err := h.Service.ApprovedRecords(r.Context(), employeeID, date)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, leaves)
}

func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	requestType := chi.URLParam(r, "type")

	settings, err := h.Service.Settings(r.Context(), requestType)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, settings)
}

func (h *Handler) Holidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.Service.Holidays(r.Context())
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, holidays)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	stats, err := h.Service.Stats(r.Context(), employeeID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, stats)
}

func (h *Handler) MyODs(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	ods, err := h.Service.MyODs(r.Context(), employeeID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, ods)
}

func (h *Handler) ApplyOD(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req api.ApplyODRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.ApplyOD(r.Context(), employeeID, req)
	if err != nil {
		h.Logger.Error("failed to apply od", "employee_id", employeeID, "error", err)
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, created)
}

func (h *Handler) UpdateODOutcome(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")

	var body struct {
		Outcome string `json:"outcome"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateODOutcome(r.Context(), employeeID, id, body.Outcome)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, updated)
}

func (h *Handler) CancelOD(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")

	cancelled, err := h.Service.CancelOD(r.Context(), employeeID, id)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, cancelled)
}

func (h *Handler) ValidateCCLDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.WriteError(w, http.StatusBadRequest, "date is required")
		return
	}

	validation, err := h.Service.ValidateCCLDate(r.Context(), date)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, validation)
}

func (h *Handler) ApplyCCL(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req api.ApplyCCLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.ApplyCCL(r.Context(), employeeID, req)
	if err != nil {
		h.Logger.Error("failed to apply ccl", "employee_id", employeeID, "error", err)
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, created)
}

func (h *Handler) MyCCLs(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.caller(w, r)
	if !ok {
		return
	}

	ccls, err := h.Service.MyCCLs(r.Context(), employeeID)
	if err != nil {
		h.WriteServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, ccls)
}
