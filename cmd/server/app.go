package main

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/lang-portal/internal/config"
	"github.com/phrazzld/lang-portal/internal/platform/postgres"
	"github.com/phrazzld/lang-portal/internal/service"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	db     *sql.DB
	logger *slog.Logger

	catalogService   service.CatalogService
	sessionService   service.SessionService
	dashboardService service.DashboardService
	resetService     service.ResetService
}

// newApplication wires the stores and services over the given database
// handle.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) *application {
	wordStore := postgres.NewWordStore(db, logger)
	groupStore := postgres.NewGroupStore(db, logger)
	activityStore := postgres.NewStudyActivityStore(db, logger)
	sessionStore := postgres.NewStudySessionStore(db, logger)
	reviewStore := postgres.NewWordReviewStore(db, logger)
	statsStore := postgres.NewStatsStore(db, logger)
	resetStore := postgres.NewResetStore(db, logger)

	return &application{
		config: cfg,
		db:     db,
		logger: logger,
		catalogService: service.NewCatalogService(
			wordStore, groupStore, activityStore, statsStore, logger),
		sessionService: service.NewSessionService(
			db, sessionStore, groupStore, activityStore, wordStore, reviewStore, statsStore, logger),
		dashboardService: service.NewDashboardService(
			sessionStore, groupStore, statsStore, logger),
		resetService: service.NewResetService(db, resetStore, logger),
	}
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
