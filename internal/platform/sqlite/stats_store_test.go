package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/store"
)

// insertReview applies a fabricated review so the log carries a row with a
// controlled timestamp and outcome.
func insertReview(
	t *testing.T,
	s *SQLiteWordStore,
	state *domain.LearningState,
	reviewedAt time.Time,
	outcome domain.ReviewOutcome,
) *domain.LearningState {
	t.Helper()

	next := state.Clone()
	next.Stage = domain.StageLearning
	next.Interval = 24 * time.Hour
	next.ReviewCount++
	next.LastReviewedAt = reviewedAt
	next.DueAt = reviewedAt.Add(next.Interval)

	record := &domain.ReviewRecord{
		WordID:        next.WordID,
		ReviewedAt:    reviewedAt,
		Outcome:       outcome,
		IntervalAfter: next.Interval,
	}
	require.NoError(t, s.Apply(context.Background(), next, record))
	next.Version++
	return next
}

func TestStatsStoreStageCounts(t *testing.T) {
	db := newTestDB(t)
	wordStore := NewSQLiteWordStore(db, nil)
	statsStore := NewSQLiteStatsStore(db, nil)
	ctx := context.Background()
	now := time.Now().UTC()

	seedWord(t, wordStore, "one")
	seedWord(t, wordStore, "two")
	_, state := seedWord(t, wordStore, "three")
	scheduleWord(t, wordStore, state, domain.StageReviewing, now)

	counts, err := statsStore.StageCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[domain.StageNew])
	assert.Equal(t, 1, counts[domain.StageReviewing])
	assert.Zero(t, counts[domain.StageMastered])
}

func TestStatsStoreOutcomeCounts(t *testing.T) {
	db := newTestDB(t)
	wordStore := NewSQLiteWordStore(db, nil)
	statsStore := NewSQLiteStatsStore(db, nil)
	ctx := context.Background()
	now := mustParse(t, "2026-08-20T12:00:00Z")

	_, state := seedWord(t, wordStore, "tracked")
	state = insertReview(t, wordStore, state, now.AddDate(0, 0, -10), domain.ReviewOutcomeAgain)
	state = insertReview(t, wordStore, state, now.AddDate(0, 0, -2), domain.ReviewOutcomeGood)
	insertReview(t, wordStore, state, now.AddDate(0, 0, -1), domain.ReviewOutcomeGood)

	all, err := statsStore.OutcomeCounts(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, all[domain.ReviewOutcomeAgain])
	assert.Equal(t, 2, all[domain.ReviewOutcomeGood])

	recent, err := statsStore.OutcomeCounts(ctx, now.AddDate(0, 0, -5))
	require.NoError(t, err)
	assert.Zero(t, recent[domain.ReviewOutcomeAgain], "the old failure falls outside the window")
	assert.Equal(t, 2, recent[domain.ReviewOutcomeGood])
}

func TestStatsStoreReviewDaysAndDailyCounts(t *testing.T) {
	db := newTestDB(t)
	wordStore := NewSQLiteWordStore(db, nil)
	statsStore := NewSQLiteStatsStore(db, nil)
	ctx := context.Background()

	_, state := seedWord(t, wordStore, "daily")
	state = insertReview(t, wordStore, state, mustParse(t, "2026-08-18T08:00:00Z"), domain.ReviewOutcomeGood)
	state = insertReview(t, wordStore, state, mustParse(t, "2026-08-18T20:00:00Z"), domain.ReviewOutcomeGood)
	insertReview(t, wordStore, state, mustParse(t, "2026-08-20T09:00:00Z"), domain.ReviewOutcomeHard)

	days, err := statsStore.ReviewDays(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-08-20", "2026-08-18"}, days, "distinct days, most recent first")

	counts, err := statsStore.DailyReviewCounts(ctx,
		mustParse(t, "2026-08-17T00:00:00Z"),
		mustParse(t, "2026-08-21T00:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-08-18": 2, "2026-08-20": 1}, counts)
}

func TestStatsStoreCountScheduledBefore(t *testing.T) {
	db := newTestDB(t)
	wordStore := NewSQLiteWordStore(db, nil)
	statsStore := NewSQLiteStatsStore(db, nil)
	ctx := context.Background()
	now := mustParse(t, "2026-08-20T12:00:00Z")

	seedWord(t, wordStore, "unscheduled")

	_, dueState := seedWord(t, wordStore, "due")
	scheduleWord(t, wordStore, dueState, domain.StageLearning, now.Add(-time.Hour))

	_, futureState := seedWord(t, wordStore, "future")
	scheduleWord(t, wordStore, futureState, domain.StageReviewing, now.Add(time.Hour))

	count, err := statsStore.CountScheduledBefore(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStatsStoreHistoryForWord(t *testing.T) {
	db := newTestDB(t)
	wordStore := NewSQLiteWordStore(db, nil)
	statsStore := NewSQLiteStatsStore(db, nil)
	ctx := context.Background()
	now := mustParse(t, "2026-08-20T12:00:00Z")

	word, state := seedWord(t, wordStore, "storied")
	state = insertReview(t, wordStore, state, now.AddDate(0, 0, -2), domain.ReviewOutcomeAgain)
	insertReview(t, wordStore, state, now.AddDate(0, 0, -1), domain.ReviewOutcomeGood)

	history, err := statsStore.HistoryForWord(ctx, word.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.ReviewOutcomeAgain, history[0].Outcome, "oldest entry first")
	assert.Equal(t, domain.ReviewOutcomeGood, history[1].Outcome)

	fresh, _ := seedWord(t, wordStore, "untouched")
	history, err = statsStore.HistoryForWord(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = statsStore.HistoryForWord(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrWordNotFound)
}
