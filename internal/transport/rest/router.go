package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/jmoiron/sqlx"

	"github.com/frahmantamala/hrms-client/internal/attendance"
	"github.com/frahmantamala/hrms-client/internal/auth"
	"github.com/frahmantamala/hrms-client/internal/employee"
	"github.com/frahmantamala/hrms-client/internal/leave"
	"github.com/frahmantamala/hrms-client/internal/transport/middleware"
	"github.com/frahmantamala/hrms-client/internal/transport/swagger"
)

// RegisterAllRoutes mounts the full stub API under /api, matching the paths
// the mobile client calls.
func RegisterAllRoutes(router *chi.Mux, db *sqlx.DB, authHandler *auth.Handler, employeeHandler *employee.Handler, attendanceHandler *attendance.Handler, leaveHandler *leave.Handler, openAPIPath string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// contract and Swagger UI live outside the API prefix
	if openAPIPath != "" {
		router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, openAPIPath)
		})
		router.Handle("/swagger/*", swagger.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", authHandler.Login)

		// everything else requires a bearer token
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/auth/me", authHandler.Me)
			pr.Put("/users/profile", employeeHandler.UpdateProfile)
			pr.Get("/employees/{empNo}", employeeHandler.GetByEmpNo)

			pr.Route("/attendance", func(ar chi.Router) {
				ar.Get("/detail", attendanceHandler.GetDetail)
				ar.Get("/list", attendanceHandler.List)
			})

			pr.Route("/leaves", func(lr chi.Router) {
				lr.Get("/", leaveHandler.AllLeaves)
				lr.Post("/", leaveHandler.Apply)
				lr.Get("/my", leaveHandler.MyLeaves)
				lr.Get("/pending-approvals", leaveHandler.PendingApprovals)
				lr.Get("/approved-records", leaveHandler.ApprovedRecords)
				lr.Get("/settings/{type}", leaveHandler.Settings)
				lr.Get("/holidays", leaveHandler.Holidays)
				lr.Get("/stats", leaveHandler.Stats)
				lr.Put("/{id}/action", leaveHandler.TakeAction)

				lr.Route("/od", func(or chi.Router) {
					or.Get("/my", leaveHandler.MyODs)
					or.Post("/", leaveHandler.ApplyOD)
					or.Put("/{id}/outcome", leaveHandler.UpdateODOutcome)
					or.Put("/{id}/cancel", leaveHandler.CancelOD)
				})

				lr.Route("/ccl", func(cr chi.Router) {
					cr.Post("/", leaveHandler.ApplyCCL)
					cr.Get("/my", leaveHandler.MyCCLs)
					cr.Get("/validate-date", leaveHandler.ValidateCCLDate)
					cr.Get("/assigned-by-users", employeeHandler.CCLVerifiers)
				})
			})
		})
	})
}
