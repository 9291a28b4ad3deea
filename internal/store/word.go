package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daylex/daylex/internal/domain"
)

// WordStore defines the interface for vocabulary and learning-state
// persistence. A Word and its LearningState are created, read, and removed
// together; the state alone mutates through Apply.
type WordStore interface {
	// Create saves a new word together with its initial learning state.
	// Both rows are written atomically. Returns ErrWordExists if a word
	// with the same ID or term is already present, and validation errors
	// wrapped in ErrInvalidEntity if either entity is invalid.
	Create(ctx context.Context, word *domain.Word, state *domain.LearningState) error

	// CreateMultiple imports a batch atomically: either every word is
	// created or none. Error semantics match Create.
	CreateMultiple(ctx context.Context, words []*domain.Word, states []*domain.LearningState) error

	// Get retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// GetByTerm retrieves a word by its term, matched case-insensitively.
	// Returns ErrWordNotFound if no word carries the term.
	GetByTerm(ctx context.Context, term string) (*domain.Word, error)

	// UpdateWord replaces the catalog fields of an existing word:
	// translation, pronunciation, example, difficulty, and tags. The
	// learning state and the favorite flag are untouched. Returns
	// ErrWordNotFound if the word is absent.
	UpdateWord(ctx context.Context, word *domain.Word) error

	// SetFavorite marks or unmarks a word as a favorite. Returns
	// ErrWordNotFound if the word is absent.
	SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) error

	// Favorites returns every favorite word, ordered by term.
	Favorites(ctx context.Context) ([]*domain.Word, error)

	// Search returns words whose term or translation contains the query,
	// matched case-insensitively, ordered by term. At most limit words are
	// returned; limit <= 0 means no cap.
	Search(ctx context.Context, query string, limit int) ([]*domain.Word, error)

	// GetState retrieves the learning state for a word, with its full
	// review history loaded oldest-first.
	// Returns ErrStateNotFound if no state exists for the ID.
	GetState(ctx context.Context, id uuid.UUID) (*domain.LearningState, error)

	// DueBefore returns the IDs of scheduled words whose due time is at or
	// before t, excluding suspended words, ordered by due time ascending
	// with the ID as a stable tie-break. Unscheduled (new) words are never
	// returned. At most limit IDs are returned; limit <= 0 means no cap.
	DueBefore(ctx context.Context, t time.Time, limit int) ([]uuid.UUID, error)

	// FavoritesDueBefore is DueBefore restricted to favorite words.
	FavoritesDueBefore(ctx context.Context, t time.Time, limit int) ([]uuid.UUID, error)

	// NewCandidates returns up to limit IDs of words still in the new
	// stage whose difficulty falls inside [minDifficulty, maxDifficulty],
	// in import (insertion) order to respect curriculum sequencing. A bound
	// outside the 1-5 rating scale falls back to the scale edge.
	NewCandidates(ctx context.Context, limit, minDifficulty, maxDifficulty int) ([]uuid.UUID, error)

	// Apply atomically replaces the learning state for state.WordID and
	// appends record to the review log when record is non-nil. The write
	// is guarded by an optimistic version check: it fails with ErrConflict
	// if the persisted version differs from state.Version, and with
	// ErrStateNotFound if no state row exists. On success the persisted
	// version is state.Version+1 and the change is durable before return.
	Apply(ctx context.Context, state *domain.LearningState, record *domain.ReviewRecord) error

	// Remove deletes the word, its learning state, and its review history
	// together. Returns ErrWordNotFound if the word is absent.
	Remove(ctx context.Context, id uuid.UUID) error

	// Count returns the total number of words in the catalog.
	Count(ctx context.Context) (int, error)

	// WithTx returns a new WordStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller
	// (typically a service).
	WithTx(tx *sqlx.Tx) WordStore
}
