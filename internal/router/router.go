package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/grader-lambda/docs"
	"github.com/saulo-duarte/grader-lambda/internal/assignment"
	"github.com/saulo-duarte/grader-lambda/internal/auth"
	"github.com/saulo-duarte/grader-lambda/internal/config"
	"github.com/saulo-duarte/grader-lambda/internal/submission"
)

type RouterConfig struct {
	AssignmentHandler *assignment.Handler
	SubmissionHandler *submission.Handler
	CorsOrigins       []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/assignments/{id}", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleStudent))

			assignment.StudentRoutes(r, cfg.AssignmentHandler)
			submission.StudentRoutes(r, cfg.SubmissionHandler)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleAdmin))

			assignment.AdminRoutes(r, cfg.AssignmentHandler)
			submission.AdminRoutes(r, cfg.SubmissionHandler)
		})
	})
	return r
}
