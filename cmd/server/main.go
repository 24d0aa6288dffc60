package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"lostfound-backend/db"
	"lostfound-backend/internal/config"
	"lostfound-backend/internal/http/router"
	"lostfound-backend/internal/mail"
	"lostfound-backend/internal/repository"
	"lostfound-backend/internal/service"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "lostfound-api").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// The server still boots without a database; notify requests then fail
	// with a configuration error until DATABASE_URL is set.
	var (
		database *sql.DB
		store    repository.ItemStore
		accounts repository.AccountDirectory
	)
	if cfg.DatabaseURL == "" {
		log.Warn().Msg("DATABASE_URL is not set; match notifications will fail until it is configured")
	} else {
		database, err = db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer database.Close()
		store = repository.NewItemStore(database)
		accounts = repository.NewAccountDirectory(database)
	}

	sender, err := buildSender(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize email provider")
	}
	if sender == nil {
		log.Warn().Str("provider", cfg.Mail.Provider).Msg("email provider not configured; notifications will be reported without dispatch")
	}

	notifier := service.NewNotifier(store, accounts, sender, cfg.Mail.Sender, log)
	r := router.Setup(cfg, notifier, database, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown handler
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-shutdown
		log.Info().Msg("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting Lost & Found API server")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// buildSender picks the email provider from config. A nil Sender with a nil
// error means delivery is intentionally unconfigured.
func buildSender(ctx context.Context, cfg *config.Config) (mail.Sender, error) {
	switch cfg.Mail.Provider {
	case "ses":
		if cfg.Mail.AWSAccessKey == "" || cfg.Mail.AWSSecretKey == "" {
			return nil, nil
		}
		return mail.NewSESClient(ctx, cfg.Mail.AWSRegion, cfg.Mail.AWSAccessKey, cfg.Mail.AWSSecretKey)
	default:
		if cfg.Mail.ResendAPIKey == "" {
			return nil, nil
		}
		return mail.NewResendClient(cfg.Mail.ResendAPIKey), nil
	}
}
