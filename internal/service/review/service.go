// Package review records study outcomes and advances word schedules.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/domain/srs"
	"github.com/daylex/daylex/internal/platform/logger"
	"github.com/daylex/daylex/internal/store"
)

// Service records review outcomes. Each outcome is applied atomically: the
// scheduler computes the next state, and the state update plus the history
// entry commit in one transaction before the call returns.
type Service struct {
	db         *sqlx.DB
	wordStore  store.WordStore
	srsService srs.Service
	logger     *slog.Logger
}

// NewService creates a review Service.
func NewService(
	db *sqlx.DB,
	wordStore store.WordStore,
	srsService srs.Service,
	log *slog.Logger,
) *Service {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if wordStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("wordStore cannot be nil")
	}
	if srsService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("srsService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		db:         db,
		wordStore:  wordStore,
		srsService: srsService,
		logger:     log.With(slog.String("component", "review_service")),
	}
}

// RecordOutcome grades a word and persists the resulting schedule. The
// returned state reflects the committed row, version bump included.
//
// Error passthrough: store.ErrStateNotFound when the word is unknown,
// store.ErrConflict when a concurrent update won the version race,
// srs.ErrInvalidOutcome for an unknown grade, and srs.ErrWordSuspended when
// the word is suspended. In every error case the stored state is unchanged.
func (s *Service) RecordOutcome(
	ctx context.Context,
	wordID uuid.UUID,
	outcome domain.ReviewOutcome,
	now time.Time,
) (*domain.LearningState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Reject bad grades before touching storage.
	if !outcome.IsValid() {
		log.Warn("invalid review outcome",
			slog.String("word_id", wordID.String()),
			slog.String("outcome", string(outcome)))
		return nil, srs.ErrInvalidOutcome
	}

	var next *domain.LearningState
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.wordStore.WithTx(tx)

		current, err := txStore.GetState(ctx, wordID)
		if err != nil {
			return err
		}

		next, err = s.srsService.CalculateNextReview(current, outcome, now)
		if err != nil {
			return err
		}

		record := next.History[len(next.History)-1]
		if err := txStore.Apply(ctx, next, &record); err != nil {
			return err
		}
		next.Version++

		return nil
	})
	if err != nil {
		log.Debug("review not recorded",
			slog.String("word_id", wordID.String()),
			slog.String("outcome", string(outcome)),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("review recorded",
		slog.String("word_id", wordID.String()),
		slog.String("outcome", string(outcome)),
		slog.String("stage", string(next.Stage)),
		slog.Duration("interval", next.Interval))

	return next, nil
}

// Postpone shifts a word's next review forward by the given number of days
// without regrading it.
func (s *Service) Postpone(
	ctx context.Context,
	wordID uuid.UUID,
	days int,
	now time.Time,
) (*domain.LearningState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var next *domain.LearningState
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.wordStore.WithTx(tx)

		current, err := txStore.GetState(ctx, wordID)
		if err != nil {
			return err
		}

		next, err = s.srsService.PostponeReview(current, days, now)
		if err != nil {
			return err
		}

		if err := txStore.Apply(ctx, next, nil); err != nil {
			return err
		}
		next.Version++

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to postpone review: %w", err)
	}

	log.Info("review postponed",
		slog.String("word_id", wordID.String()),
		slog.Int("days", days))

	return next, nil
}
