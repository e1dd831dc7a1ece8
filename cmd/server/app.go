package main

import (
	"database/sql"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	apimw "github.com/phrazzld/bloglist-api/internal/api/middleware"
	"github.com/phrazzld/bloglist-api/internal/config"
	"github.com/phrazzld/bloglist-api/internal/platform/metrics"
	"github.com/phrazzld/bloglist-api/internal/platform/postgres"
	"github.com/phrazzld/bloglist-api/internal/service/auth"
	"github.com/phrazzld/bloglist-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore        store.UserStore
	blogStore        store.BlogStore
	readingListStore store.ReadingListStore
	sessionStore     store.SessionStore

	tokenService     auth.TokenService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	metricsRegistry  *prometheus.Registry
	metricsCollector *metrics.Collector
	loginRateLimiter *apimw.LoginRateLimiter
}

// newApplication wires stores and services on top of an open database
// connection.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	hasher := auth.NewBcryptHasher()
	registry := prometheus.NewRegistry()

	return &application{
		config:           cfg,
		logger:           log,
		db:               db,
		userStore:        postgres.NewUserStore(db, log),
		blogStore:        postgres.NewBlogStore(db, log),
		readingListStore: postgres.NewReadingListStore(db, log),
		sessionStore:     postgres.NewSessionStore(db, log),
		tokenService:     tokenService,
		passwordHasher:   hasher,
		passwordVerifier: hasher,
		metricsRegistry:  registry,
		metricsCollector: metrics.NewCollector(registry),
		loginRateLimiter: apimw.NewLoginRateLimiter(
			cfg.Auth.LoginRatePerMinute,
			cfg.Auth.LoginBurst,
		),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	app.loginRateLimiter.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
