package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/o-magnata69/back-end-api/internal/config"
	"github.com/o-magnata69/back-end-api/internal/platform/postgres"
	"github.com/o-magnata69/back-end-api/internal/service"
	"github.com/o-magnata69/back-end-api/internal/service/auth"
	"github.com/o-magnata69/back-end-api/internal/store"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB
	closer io.Closer

	// Stores (using interfaces for proper abstraction)
	userStore     store.UserStore
	questionStore store.QuestionStore
	healthStore   store.Pinger
	transactor    store.Transactor

	// Service interfaces
	passwordHasher  auth.PasswordHasher
	userService     service.UserService
	questionService service.QuestionService
	healthService   service.HealthService
}

// newApplication creates a new application instance with all dependencies initialized.
// db is shared by every store; closer releases it on shutdown and may be nil.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, closer io.Closer) *application {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
		closer: closer,
	}

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BCryptCost)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.questionStore = postgres.NewPostgresQuestionStore(db, logger)
	app.healthStore = postgres.NewPostgresHealthStore(db)
	app.transactor = store.NewDBTransactor(db)

	app.userService = service.NewUserService(app.userStore, app.transactor, app.passwordHasher, logger)
	app.questionService = service.NewQuestionService(app.questionStore, app.transactor, logger)
	app.healthService = service.NewHealthService(app.healthStore, logger)

	logger.Info("application initialized successfully")
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.closer != nil {
		if err := app.closer.Close(); err != nil {
			app.logger.Error("error closing database pool", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
