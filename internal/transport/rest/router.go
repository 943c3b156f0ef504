package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/hr-assistant/internal/assistant"
	"github.com/frahmantamala/hr-assistant/internal/auth"
	"github.com/frahmantamala/hr-assistant/internal/employee"
	"github.com/frahmantamala/hr-assistant/internal/hrrequest"
	"github.com/frahmantamala/hr-assistant/internal/policy"
	"github.com/frahmantamala/hr-assistant/internal/transport/middleware"
	"github.com/frahmantamala/hr-assistant/internal/transport/swagger"
	"github.com/go-chi/chi"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	employeeHandler *employee.Handler,
	requestHandler *hrrequest.Handler,
	policyHandler *policy.Handler,
	assistantHandler *assistant.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)
			sr.Post("/logout", authHandler.Logout)
		})

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/employees/me", func(er chi.Router) {
				er.Get("/", employeeHandler.GetCurrentEmployee)
				er.Get("/vacation-balance", employeeHandler.GetVacationBalance)
				er.Get("/salary-payments", employeeHandler.GetSalaryPayments)
			})

			pr.Route("/requests", func(rr chi.Router) {
				rr.Post("/", requestHandler.SubmitRequest)
				rr.Get("/", requestHandler.ListRequests)
				rr.Get("/{id}", requestHandler.GetRequest)

				// Manager routes
				rr.Group(func(mr chi.Router) {
					mr.Use(authHandler.RequireManager)
					mr.Get("/pending", requestHandler.ListPendingRequests)
					mr.Patch("/{id}/approve", requestHandler.ApproveRequest)
					mr.Patch("/{id}/reject", requestHandler.RejectRequest)
				})
			})

			pr.Route("/policies", func(plr chi.Router) {
				plr.Get("/", policyHandler.GetPolicies)
				plr.Get("/{id}", policyHandler.GetPolicy)
			})

			pr.Route("/chat", func(cr chi.Router) {
				cr.Post("/", assistantHandler.Chat)
				cr.Get("/history", assistantHandler.GetHistory)
				cr.Get("/sessions/{session_id}", assistantHandler.GetSessionHistory)
			})
		})
	})
}
