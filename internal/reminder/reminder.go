// Package reminder runs the daily study-reminder job.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/daylex/daylex/internal/service/planner"
)

// Reminder schedules a daily job that computes the day's study plan and
// logs a summary. It only reads; recording outcomes stays with the API.
type Reminder struct {
	scheduler      *gocron.Scheduler
	plannerService *planner.Service
	planConfig     planner.PlanConfig
	at             string
	logger         *slog.Logger
}

// New creates a Reminder firing daily at the given wall-clock time
// ("15:04", UTC).
func New(
	plannerService *planner.Service,
	planConfig planner.PlanConfig,
	at string,
	log *slog.Logger,
) (*Reminder, error) {
	if plannerService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("plannerService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	if _, err := time.Parse("15:04", at); err != nil {
		return nil, fmt.Errorf("invalid reminder time %q: %w", at, err)
	}

	return &Reminder{
		scheduler:      gocron.NewScheduler(time.UTC),
		plannerService: plannerService,
		planConfig:     planConfig,
		at:             at,
		logger:         log.With(slog.String("component", "reminder")),
	}, nil
}

// Start registers the daily job and runs the scheduler in the background.
func (r *Reminder) Start() error {
	if _, err := r.scheduler.Every(1).Day().At(r.at).Do(r.announce); err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}

	r.scheduler.StartAsync()
	r.logger.Info("reminder scheduled", slog.String("at", r.at))
	return nil
}

// Stop terminates the scheduler.
func (r *Reminder) Stop() {
	r.scheduler.Stop()
}

func (r *Reminder) announce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	plan, err := r.plannerService.Plan(ctx, now, r.planConfig)
	if err != nil {
		r.logger.Error("failed to compute reminder plan", slog.String("error", err.Error()))
		return
	}

	reviews, fresh := 0, 0
	for _, entry := range plan {
		switch entry.Intent {
		case planner.IntentReview:
			reviews++
		case planner.IntentNew:
			fresh++
		}
	}

	if len(plan) == 0 {
		r.logger.Info("nothing due today")
		return
	}

	r.logger.Info("study session ready",
		slog.Int("reviews", reviews),
		slog.Int("new_words", fresh),
		slog.Int("total", len(plan)))
}
