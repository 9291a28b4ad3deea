package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/domain/srs"
)

// newTestDB opens a fresh in-memory database with the full schema applied.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	require.NoError(t, Migrate(db, nil), "failed to apply migrations")
	return db
}

// seedWord creates a word with its initial learning state and returns both.
func seedWord(t *testing.T, store *SQLiteWordStore, term string) (*domain.Word, *domain.LearningState) {
	t.Helper()

	word, err := domain.NewWord(term, "перевод "+term)
	require.NoError(t, err)

	state, err := domain.NewLearningState(word.ID, srs.NewDefaultParams().DefaultEase)
	require.NoError(t, err)

	require.NoError(t, store.Create(context.Background(), word, state))
	return word, state
}

// seedWordWithDifficulty seeds a word rated at the given difficulty.
func seedWordWithDifficulty(t *testing.T, store *SQLiteWordStore, term string, difficulty int) *domain.Word {
	t.Helper()

	word, err := domain.NewWord(term, "перевод "+term)
	require.NoError(t, err)
	word.Difficulty = difficulty

	state, err := domain.NewLearningState(word.ID, srs.NewDefaultParams().DefaultEase)
	require.NoError(t, err)

	require.NoError(t, store.Create(context.Background(), word, state))
	return word
}

// scheduleWord moves a seeded word into a reviewed, scheduled state.
func scheduleWord(
	t *testing.T,
	store *SQLiteWordStore,
	state *domain.LearningState,
	stage domain.Stage,
	dueAt time.Time,
) *domain.LearningState {
	t.Helper()

	next := state.Clone()
	next.Stage = stage
	next.Interval = 24 * time.Hour
	next.ReviewCount = 1
	next.ConsecutiveCorrect = 1
	next.LastReviewedAt = dueAt.Add(-24 * time.Hour)
	next.DueAt = dueAt

	record := &domain.ReviewRecord{
		WordID:        next.WordID,
		ReviewedAt:    next.LastReviewedAt,
		Outcome:       domain.ReviewOutcomeGood,
		IntervalAfter: next.Interval,
	}
	require.NoError(t, store.Apply(context.Background(), next, record))
	next.Version++
	return next
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts.UTC()
}
