package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/Sohail342/task-management/internal/auth"
	"github.com/Sohail342/task-management/internal/task"
	"github.com/Sohail342/task-management/internal/transport/middleware"
	"github.com/Sohail342/task-management/internal/transport/swagger"
	"github.com/Sohail342/task-management/internal/user"
)

// RegisterAllRoutes wires the HTTP surface: public auth endpoints, the
// access-gated profile/employee/user-admin routes, and the task routes.
// Role allow-lists are declared here, per endpoint, as values.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	taskHandler *task.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Get("/health", healthHandler.healthCheckHandler)
	router.Get("/ping", healthHandler.pingHandler)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/signin", authHandler.Signin)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/logout", authHandler.Logout)

		// Protected routes behind the access gate
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.Middleware)

			pr.Get("/profile", userHandler.Profile)

			pr.Group(func(sr chi.Router) {
				sr.Use(auth.RequireRoles(logger, auth.RoleAdmin, auth.RoleSupervisor))
				sr.Get("/employees", userHandler.ListEmployees)
			})

			pr.Group(func(ar chi.Router) {
				ar.Use(auth.RequireRoles(logger, auth.RoleAdmin))
				ar.Post("/users/create", userHandler.CreateUser)
				ar.Get("/users/{id}", userHandler.GetUser)
				ar.Put("/users/{id}", userHandler.UpdateUser)
				ar.Delete("/users/{id}", userHandler.DeleteUser)
			})
		})
	})

	router.Route("/tasks", func(r chi.Router) {
		r.Use(authHandler.Middleware)

		r.Get("/", taskHandler.ListTasks)
		r.Get("/{id}", taskHandler.GetTask)
		r.Patch("/{id}/status", taskHandler.UpdateStatus)
		r.Post("/{id}/dependants", taskHandler.AddDependant)

		r.Group(func(ar chi.Router) {
			ar.Use(auth.RequireRoles(logger, auth.RoleAdmin))
			ar.Post("/", taskHandler.CreateTask)
		})

		r.Group(func(sr chi.Router) {
			sr.Use(auth.RequireRoles(logger, auth.RoleSupervisor, auth.RoleCompliance))
			sr.Post("/{id}/remarks", taskHandler.AddRemark)
			sr.Post("/{id}/escalate", taskHandler.Escalate)
		})
	})
}
