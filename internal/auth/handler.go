package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/internal/employee"
	"github.com/frahmantamala/hrms-client/internal/session"
	"github.com/frahmantamala/hrms-client/internal/transport"
	"github.com/frahmantamala/hrms-client/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// loginResponse mirrors what the mobile client persists: the identity record
// plus the bearer token.
type loginResponse struct {
	User  session.User `json:"user"`
	Token string       `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, token, err := h.Service.Authenticate(r.Context(), dto)
	if err != nil {
		h.Logger.Error("authentication failed", "email", dto.Email, "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, loginResponse{
		User:  employee.WireUser(user),
		Token: token,
	})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := internal.UserIDFromContext(r.Context())
	if userID == "" {
		h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	user, err := h.Service.GetUser(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to load current user", "user_id", userID, "error", err)
		h.WriteServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, employee.WireUser(user))
}

func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.Logger.Warn("auth middleware: missing authorization token", "path", r.URL.Path)
			h.WriteError(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := h.Service.ValidateAccessToken(token)
		if err != nil {
			h.Logger.Warn("token validation failed", "path", r.URL.Path, "error", err)
			h.WriteServiceError(w, err)
			return
		}

		ctx := internal.ContextWithUserID(r.Context(), claims.UserID)
		if claims.EmpNo != "" {
			ctx = internal.ContextWithEmpNo(ctx, claims.EmpNo)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
