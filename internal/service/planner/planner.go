// Package planner assembles daily study sessions from due reviews and
// not-yet-started words.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daylex/daylex/internal/platform/logger"
	"github.com/daylex/daylex/internal/store"
)

// Intent describes what a plan entry asks the learner to do.
type Intent string

const (
	// IntentNew introduces a word for the first time.
	IntentNew Intent = "new"

	// IntentReview re-tests a previously studied word.
	IntentReview Intent = "review"
)

// PlanEntry is one item of a study session.
type PlanEntry struct {
	WordID uuid.UUID `json:"word_id"`
	Intent Intent    `json:"intent"`
}

// PlanConfig bounds a single session. A zero quota empties the
// corresponding category.
type PlanConfig struct {
	NewWordQuota int
	ReviewQuota  int

	// DifficultyMin and DifficultyMax bound the 1-5 difficulty band new
	// words are drawn from. Zero values fall back to the scale edges, so
	// the zero config selects from the whole catalog.
	DifficultyMin int
	DifficultyMax int

	// Interleave alternates review and new entries instead of the default
	// reviews-first ordering.
	Interleave bool

	// FavoritesOnly restricts the review half of the session to favorite
	// words. New-word selection is unaffected.
	FavoritesOnly bool
}

// Service builds study plans. Plans are read-only projections of the
// stored learning states: building one never mutates anything, so calling
// Plan twice with the same inputs yields the same plan.
type Service struct {
	wordStore store.WordStore
	logger    *slog.Logger
}

// NewService creates a planner Service.
func NewService(wordStore store.WordStore, log *slog.Logger) *Service {
	if wordStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("wordStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		wordStore: wordStore,
		logger:    log.With(slog.String("component", "planner_service")),
	}
}

// Plan assembles the session for the given moment. Reviews come first in
// due order (the oldest backlog is never dropped, only deferred past the
// quota), then new words in import order. With cfg.Interleave the two
// categories alternate, the longer one finishing the tail.
func (s *Service) Plan(ctx context.Context, now time.Time, cfg PlanConfig) ([]PlanEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var reviews []uuid.UUID
	if cfg.ReviewQuota > 0 {
		var err error
		if cfg.FavoritesOnly {
			reviews, err = s.wordStore.FavoritesDueBefore(ctx, now, cfg.ReviewQuota)
		} else {
			reviews, err = s.wordStore.DueBefore(ctx, now, cfg.ReviewQuota)
		}
		if err != nil {
			log.Error("failed to collect due reviews", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to collect due reviews: %w", err)
		}
	}

	var fresh []uuid.UUID
	if cfg.NewWordQuota > 0 {
		var err error
		fresh, err = s.wordStore.NewCandidates(ctx, cfg.NewWordQuota, cfg.DifficultyMin, cfg.DifficultyMax)
		if err != nil {
			log.Error("failed to collect new candidates", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to collect new candidates: %w", err)
		}
	}

	plan := assemble(reviews, fresh, cfg.Interleave)

	log.Debug("session planned",
		slog.Int("reviews", len(reviews)),
		slog.Int("new_words", len(fresh)),
		slog.Bool("interleave", cfg.Interleave),
		slog.Bool("favorites_only", cfg.FavoritesOnly))

	return plan, nil
}

func assemble(reviews, fresh []uuid.UUID, interleave bool) []PlanEntry {
	plan := make([]PlanEntry, 0, len(reviews)+len(fresh))

	if !interleave {
		for _, id := range reviews {
			plan = append(plan, PlanEntry{WordID: id, Intent: IntentReview})
		}
		for _, id := range fresh {
			plan = append(plan, PlanEntry{WordID: id, Intent: IntentNew})
		}
		return plan
	}

	i, j := 0, 0
	for i < len(reviews) || j < len(fresh) {
		if i < len(reviews) {
			plan = append(plan, PlanEntry{WordID: reviews[i], Intent: IntentReview})
			i++
		}
		if j < len(fresh) {
			plan = append(plan, PlanEntry{WordID: fresh[j], Intent: IntentNew})
			j++
		}
	}
	return plan
}
