// Package vocab manages the word catalog: imports, removal, and the
// suspend/resume/reset lifecycle operations.
package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/domain/srs"
	"github.com/daylex/daylex/internal/platform/logger"
	"github.com/daylex/daylex/internal/store"
)

// Lifecycle errors.
var (
	// ErrAlreadySuspended is returned when suspending a suspended word.
	ErrAlreadySuspended = errors.New("word is already suspended")

	// ErrNotSuspended is returned when resuming a word that is not suspended.
	ErrNotSuspended = errors.New("word is not suspended")

	// ErrEmptyImport is returned when an import batch contains no words.
	ErrEmptyImport = errors.New("import batch is empty")
)

// Service owns catalog mutations. Everything that changes a learning state
// goes through the version-checked apply, so concurrent mutations surface as
// conflicts instead of lost updates.
type Service struct {
	db         *sqlx.DB
	wordStore  store.WordStore
	srsService srs.Service
	logger     *slog.Logger
}

// NewService creates a vocab Service.
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
		logger:     log.With(slog.String("component", "vocab_service")),
	}
}

// ImportWords adds a batch of words, each with a fresh unscheduled learning
// state. The batch is all-or-nothing: one malformed word, one term repeated
// in the batch, or one collision with the stored catalog fails the whole
// import and nothing is written.
func (s *Service) ImportWords(ctx context.Context, words []*domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(words) == 0 {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, ErrEmptyImport)
	}

	seen := make(map[string]struct{}, len(words))
	states := make([]*domain.LearningState, 0, len(words))
	for i, word := range words {
		if err := word.Validate(); err != nil {
			return fmt.Errorf("%w: word %d (%q): %w", store.ErrInvalidEntity, i, word.Term, err)
		}

		key := strings.ToLower(strings.TrimSpace(word.Term))
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: term %q repeated in batch", store.ErrInvalidEntity, word.Term)
		}
		seen[key] = struct{}{}

		state, err := domain.NewLearningState(word.ID, s.srsService.Params().DefaultEase)
		if err != nil {
			return fmt.Errorf("%w: word %d (%q): %w", store.ErrInvalidEntity, i, word.Term, err)
		}
		states = append(states, state)
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.wordStore.WithTx(tx).CreateMultiple(ctx, words, states)
	})
	if err != nil {
		log.Warn("import failed",
			slog.Int("count", len(words)),
			slog.String("error", err.Error()))
		return err
	}

	log.Info("words imported", slog.Int("count", len(words)))
	return nil
}

// ImportMode controls how an import batch treats words whose term is
// already in the catalog.
type ImportMode string

const (
	// ImportModeNewOnly skips words whose term already exists.
	ImportModeNewOnly ImportMode = "new-only"

	// ImportModeUpdate rewrites the catalog fields of existing words while
	// leaving their learning state alone.
	ImportModeUpdate ImportMode = "update"
)

// ErrInvalidImportMode is returned for a mode outside the known set.
var ErrInvalidImportMode = errors.New("invalid import mode")

// ImportSummary reports what a mode-based import did.
type ImportSummary struct {
	Created int
	Updated int
	Skipped int
}

// ImportWordsWithMode imports a batch, resolving term collisions with
// existing catalog entries per the mode instead of failing. The batch still
// commits in one transaction.
func (s *Service) ImportWordsWithMode(
	ctx context.Context,
	words []*domain.Word,
	mode ImportMode,
) (*ImportSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if mode != ImportModeNewOnly && mode != ImportModeUpdate {
		return nil, fmt.Errorf("%w: %q", ErrInvalidImportMode, mode)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, ErrEmptyImport)
	}

	summary := &ImportSummary{}
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.wordStore.WithTx(tx)

		seen := make(map[string]struct{}, len(words))
		for i, word := range words {
			if err := word.Validate(); err != nil {
				return fmt.Errorf("%w: word %d (%q): %w", store.ErrInvalidEntity, i, word.Term, err)
			}

			key := strings.ToLower(strings.TrimSpace(word.Term))
			if _, dup := seen[key]; dup {
				summary.Skipped++
				continue
			}
			seen[key] = struct{}{}

			existing, err := txStore.GetByTerm(ctx, word.Term)
			switch {
			case err == nil:
				if mode == ImportModeNewOnly {
					summary.Skipped++
					continue
				}
				existing.Translation = word.Translation
				existing.Pronunciation = word.Pronunciation
				existing.Example = word.Example
				existing.Difficulty = word.Difficulty
				existing.Tags = word.Tags
				existing.UpdatedAt = time.Now().UTC()
				if err := txStore.UpdateWord(ctx, existing); err != nil {
					return err
				}
				summary.Updated++

			case errors.Is(err, store.ErrWordNotFound):
				state, err := domain.NewLearningState(word.ID, s.srsService.Params().DefaultEase)
				if err != nil {
					return fmt.Errorf("%w: word %d (%q): %w", store.ErrInvalidEntity, i, word.Term, err)
				}
				if err := txStore.Create(ctx, word, state); err != nil {
					return err
				}
				summary.Created++

			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Warn("mode-based import failed",
			slog.String("mode", string(mode)),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("words imported",
		slog.String("mode", string(mode)),
		slog.Int("created", summary.Created),
		slog.Int("updated", summary.Updated),
		slog.Int("skipped", summary.Skipped))

	return summary, nil
}

// GetWord returns a word by ID.
func (s *Service) GetWord(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return s.wordStore.Get(ctx, id)
}

// SetFavorite flips the favorite flag on a word and returns the updated
// word. Setting the flag to its current value is a no-op that still succeeds.
func (s *Service) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.wordStore.SetFavorite(ctx, id, favorite); err != nil {
		return nil, err
	}

	log.Info("favorite flag changed",
		slog.String("word_id", id.String()),
		slog.Bool("favorite", favorite))

	return s.wordStore.Get(ctx, id)
}

// Favorites lists the favorite words, ordered by term.
func (s *Service) Favorites(ctx context.Context) ([]*domain.Word, error) {
	return s.wordStore.Favorites(ctx)
}

// defaultSearchLimit caps keyword searches that do not ask for a limit.
const defaultSearchLimit = 50

// Search finds words whose term or translation contains the keyword.
// A non-positive limit falls back to defaultSearchLimit.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*domain.Word, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is empty", store.ErrInvalidEntity)
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.wordStore.Search(ctx, query, limit)
}

// GetState returns a word's learning state, history included.
func (s *Service) GetState(ctx context.Context, id uuid.UUID) (*domain.LearningState, error) {
	return s.wordStore.GetState(ctx, id)
}

// Remove deletes a word along with its learning state and review history.
func (s *Service) Remove(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return s.wordStore.WithTx(tx).Remove(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Info("word removed from catalog", slog.String("word_id", id.String()))
	return nil
}

// Suspend takes a word out of scheduling. The prior stage is remembered so
// Resume can restore it exactly.
func (s *Service) Suspend(ctx context.Context, id uuid.UUID, now time.Time) (*domain.LearningState, error) {
	return s.mutateState(ctx, id, "suspend", func(state *domain.LearningState) error {
		if state.Stage == domain.StageSuspended {
			return ErrAlreadySuspended
		}
		state.SuspendedFrom = state.Stage
		state.Stage = domain.StageSuspended
		state.UpdatedAt = now
		return nil
	})
}

// Resume returns a suspended word to the stage it was suspended from, with
// its schedule untouched.
func (s *Service) Resume(ctx context.Context, id uuid.UUID, now time.Time) (*domain.LearningState, error) {
	return s.mutateState(ctx, id, "resume", func(state *domain.LearningState) error {
		if state.Stage != domain.StageSuspended {
			return ErrNotSuspended
		}
		restored := state.SuspendedFrom
		if restored == "" {
			restored = domain.StageNew
		}
		state.Stage = restored
		state.SuspendedFrom = ""
		state.UpdatedAt = now
		return nil
	})
}

// Reset sends a word back to the start: stage new, zero interval, default
// ease, unscheduled. The review history stays on record.
func (s *Service) Reset(ctx context.Context, id uuid.UUID, now time.Time) (*domain.LearningState, error) {
	return s.mutateState(ctx, id, "reset", func(state *domain.LearningState) error {
		state.Stage = domain.StageNew
		state.Interval = 0
		state.Ease = s.srsService.Params().DefaultEase
		state.ConsecutiveCorrect = 0
		state.DueAt = time.Time{}
		state.SuspendedFrom = ""
		state.UpdatedAt = now
		return nil
	})
}

// mutateState loads a state, lets mutate rework it, and applies the result
// under the version check, all in one transaction.
func (s *Service) mutateState(
	ctx context.Context,
	id uuid.UUID,
	operation string,
	mutate func(*domain.LearningState) error,
) (*domain.LearningState, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var next *domain.LearningState
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := s.wordStore.WithTx(tx)

		current, err := txStore.GetState(ctx, id)
		if err != nil {
			return err
		}

		next = current.Clone()
		if err := mutate(next); err != nil {
			return err
		}

		if err := txStore.Apply(ctx, next, nil); err != nil {
			return err
		}
		next.Version++

		return nil
	})
	if err != nil {
		log.Debug("state mutation failed",
			slog.String("operation", operation),
			slog.String("word_id", id.String()),
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("state mutated",
		slog.String("operation", operation),
		slog.String("word_id", id.String()),
		slog.String("stage", string(next.Stage)))

	return next, nil
}
