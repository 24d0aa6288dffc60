package router

import (
	"database/sql"
	"time"

	"lostfound-backend/internal/config"
	"lostfound-backend/internal/http/handlers"
	"lostfound-backend/internal/http/middleware"
	"lostfound-backend/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
)

// Setup creates and configures the HTTP router
func Setup(cfg *config.Config, notifier *service.Notifier, db *sql.DB, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(httprate.LimitByIP(100, 1*time.Minute))

	// CORS middleware; preflight OPTIONS requests are answered here with 200
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           300,
	}))

	// Health check endpoints
	r.Get("/health", handlers.HealthCheck)
	r.Get("/healthz", handlers.LivenessCheck)
	r.Get("/readyz", handlers.ReadinessCheck(db))

	// API routes
	r.Route("/api", func(api chi.Router) {
		api.Mount("/v1", setupV1Routes(notifier))
	})

	return r
}

// setupV1Routes configures the v1 API routes
func setupV1Routes(notifier *service.Notifier) chi.Router {
	r := chi.NewRouter()

	notifyHandler := handlers.NewNotifyHandler(notifier)

	r.Route("/matches", func(matches chi.Router) {
		matches.Post("/notify", notifyHandler.NotifyMatch)
	})

	return r
}
