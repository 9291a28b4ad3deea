package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/daylex/daylex/internal/config"
	"github.com/daylex/daylex/internal/domain/srs"
	"github.com/daylex/daylex/internal/platform/sqlite"
	"github.com/daylex/daylex/internal/reminder"
	"github.com/daylex/daylex/internal/service/planner"
	"github.com/daylex/daylex/internal/service/review"
	"github.com/daylex/daylex/internal/service/stats"
	"github.com/daylex/daylex/internal/service/vocab"
	"github.com/daylex/daylex/internal/store"
)

// application holds the shared dependencies so lifecycle and cleanup stay in
// one place.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	wordStore  store.WordStore
	statsStore store.StatsStore

	srsService     srs.Service
	plannerService *planner.Service
	reviewService  *review.Service
	vocabService   *vocab.Service
	statsService   *stats.Service

	reminder *reminder.Reminder
}

// newApplication wires every dependency from the loaded configuration.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sqlx.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.wordStore = sqlite.NewSQLiteWordStore(db, logger)
	app.statsStore = sqlite.NewSQLiteStatsStore(db, logger)

	app.srsService = srs.NewServiceWithParams(srs.NewParams(cfg.SRS.ToParamsConfig()))
	app.plannerService = planner.NewService(app.wordStore, logger)
	app.reviewService = review.NewService(db, app.wordStore, app.srsService, logger)
	app.vocabService = vocab.NewService(db, app.wordStore, app.srsService, logger)
	app.statsService = stats.NewService(app.wordStore, app.statsStore, stats.Config{
		RetentionDays: cfg.Study.RetentionDays,
	}, logger)

	rem, err := reminder.New(app.plannerService, app.planConfig(), cfg.Study.ReminderTime, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}
	app.reminder = rem

	logger.Info("application initialized")
	return app, nil
}

// planConfig translates the study configuration into planner terms.
func (app *application) planConfig() planner.PlanConfig {
	return planner.PlanConfig{
		NewWordQuota:  app.config.Study.NewWordQuota,
		ReviewQuota:   app.config.Study.ReviewQuota,
		DifficultyMin: app.config.Study.DifficultyMin,
		DifficultyMax: app.config.Study.DifficultyMax,
		Interleave:    app.config.Study.Interleave,
	}
}

// Run starts the reminder job and the HTTP server, blocking until shutdown.
func (app *application) Run(ctx context.Context) error {
	if err := app.reminder.Start(); err != nil {
		return fmt.Errorf("failed to start reminder: %w", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.reminder != nil {
		app.reminder.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
