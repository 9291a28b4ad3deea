package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daylex/daylex/internal/domain"
)

// StatsStore defines the read-only queries backing the statistics
// aggregator. It has no mutation capability.
type StatsStore interface {
	// StageCounts returns the number of words per learning stage.
	StageCounts(ctx context.Context) (map[domain.Stage]int, error)

	// OutcomeCounts returns the number of review-log entries per outcome
	// recorded at or after since.
	OutcomeCounts(ctx context.Context, since time.Time) (map[domain.ReviewOutcome]int, error)

	// ReviewDays returns the distinct UTC calendar days with at least one
	// recorded review, most recent first, formatted as 2006-01-02.
	ReviewDays(ctx context.Context) ([]string, error)

	// DailyReviewCounts returns the number of reviews per UTC calendar day
	// in [from, to], keyed as 2006-01-02. Days without reviews are absent.
	DailyReviewCounts(ctx context.Context, from, to time.Time) (map[string]int, error)

	// CountScheduledBefore returns how many non-suspended words are due at
	// or before t.
	CountScheduledBefore(ctx context.Context, t time.Time) (int, error)

	// HistoryForWord returns the full review history for a word, oldest
	// first. Returns ErrWordNotFound if the word does not exist; a word
	// with no reviews yields an empty slice.
	HistoryForWord(ctx context.Context, id uuid.UUID) ([]domain.ReviewRecord, error)
}
