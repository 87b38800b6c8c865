package attendance

import (
	"log/slog"
	"net/http"
	"strconv"

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

func (h *Handler) GetDetail(w http.ResponseWriter, r *http.Request) {
	employeeNumber := r.URL.Query().Get("employeeNumber")
	date := r.URL.Query().Get("date")
	if employeeNumber == "" || date == "" {
		h.WriteError(w, http.StatusBadRequest, "employeeNumber and date are required")
		return
	}

	record, err := h.Service.GetDetail(r.Context(), employeeNumber, date)
	if err != nil {
		h.Logger.Error("failed to load attendance detail", "employee_number", employeeNumber, "date", date, "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, record)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	employeeNumber := q.Get("employeeNumber")
	startDate := q.Get("startDate")
	endDate := q.Get("endDate")
	if employeeNumber == "" || startDate == "" || endDate == "" {
		h.WriteError(w, http.StatusBadRequest, "employeeNumber, startDate and endDate are required")
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	list, err := h.Service.List(r.Context(), employeeNumber, startDate, endDate, page, limit)
	if err != nil {
		h.Logger.Error("failed to list attendance", "employee_number", employeeNumber, "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, list)
}
