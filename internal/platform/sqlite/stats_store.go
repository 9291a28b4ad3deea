package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/platform/logger"
	"github.com/daylex/daylex/internal/store"
)

// SQLiteStatsStore implements the store.StatsStore interface. It only reads;
// all mutation goes through SQLiteWordStore.
type SQLiteStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewSQLiteStatsStore creates a new SQLite implementation of the StatsStore
// interface.
func NewSQLiteStatsStore(db store.DBTX, log *slog.Logger) *SQLiteStatsStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &SQLiteStatsStore{
		db:     db,
		logger: log.With(slog.String("component", "stats_store")),
	}
}

// Ensure SQLiteStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*SQLiteStatsStore)(nil)

// StageCounts implements store.StatsStore.StageCounts
func (s *SQLiteStatsStore) StageCounts(ctx context.Context) (map[domain.Stage]int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []struct {
		Stage string `db:"stage"`
		Count int    `db:"count"`
	}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT stage, COUNT(*) AS count
		FROM learning_states
		GROUP BY stage
	`)
	if err != nil {
		log.Error("failed to count stages", slog.String("error", err.Error()))
		return nil, err
	}

	counts := make(map[domain.Stage]int, len(rows))
	for _, r := range rows {
		counts[domain.Stage(r.Stage)] = r.Count
	}
	return counts, nil
}

// OutcomeCounts implements store.StatsStore.OutcomeCounts
func (s *SQLiteStatsStore) OutcomeCounts(
	ctx context.Context,
	since time.Time,
) (map[domain.ReviewOutcome]int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []struct {
		Outcome string `db:"outcome"`
		Count   int    `db:"count"`
	}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT outcome, COUNT(*) AS count
		FROM review_log
		WHERE reviewed_at >= ?
		GROUP BY outcome
	`, since)
	if err != nil {
		log.Error("failed to count outcomes", slog.String("error", err.Error()))
		return nil, err
	}

	counts := make(map[domain.ReviewOutcome]int, len(rows))
	for _, r := range rows {
		counts[domain.ReviewOutcome(r.Outcome)] = r.Count
	}
	return counts, nil
}

// ReviewDays implements store.StatsStore.ReviewDays
// Timestamps are stored in UTC, so grouping on the date() of the stored
// value yields UTC calendar days.
func (s *SQLiteStatsStore) ReviewDays(ctx context.Context) ([]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var days []string
	err := s.db.SelectContext(ctx, &days, `
		SELECT DISTINCT date(reviewed_at) AS day
		FROM review_log
		ORDER BY day DESC
	`)
	if err != nil {
		log.Error("failed to list review days", slog.String("error", err.Error()))
		return nil, err
	}
	return days, nil
}

// DailyReviewCounts implements store.StatsStore.DailyReviewCounts
func (s *SQLiteStatsStore) DailyReviewCounts(
	ctx context.Context,
	from, to time.Time,
) (map[string]int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var rows []struct {
		Day   string `db:"day"`
		Count int    `db:"count"`
	}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT date(reviewed_at) AS day, COUNT(*) AS count
		FROM review_log
		WHERE reviewed_at >= ? AND reviewed_at <= ?
		GROUP BY day
	`, from, to)
	if err != nil {
		log.Error("failed to count daily reviews", slog.String("error", err.Error()))
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Day] = r.Count
	}
	return counts, nil
}

// CountScheduledBefore implements store.StatsStore.CountScheduledBefore
func (s *SQLiteStatsStore) CountScheduledBefore(ctx context.Context, t time.Time) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `
		SELECT COUNT(*)
		FROM learning_states
		WHERE stage != ? AND due_at IS NOT NULL AND due_at <= ?
	`, string(domain.StageSuspended), t)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// HistoryForWord implements store.StatsStore.HistoryForWord
func (s *SQLiteStatsStore) HistoryForWord(
	ctx context.Context,
	id uuid.UUID,
) ([]domain.ReviewRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists int
	err := s.db.GetContext(ctx, &exists,
		"SELECT COUNT(*) FROM words WHERE id = ?", id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWordNotFound
		}
		return nil, err
	}
	if exists == 0 {
		log.Debug("word not found during history lookup", slog.String("word_id", id.String()))
		return nil, store.ErrWordNotFound
	}

	var rows []struct {
		WordID           string    `db:"word_id"`
		ReviewedAt       time.Time `db:"reviewed_at"`
		Outcome          string    `db:"outcome"`
		IntervalBeforeNS int64     `db:"interval_before_ns"`
		IntervalAfterNS  int64     `db:"interval_after_ns"`
	}
	err = s.db.SelectContext(ctx, &rows, `
		SELECT word_id, reviewed_at, outcome, interval_before_ns, interval_after_ns
		FROM review_log
		WHERE word_id = ?
		ORDER BY id ASC
	`, id.String())
	if err != nil {
		log.Error("failed to load review history",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, err
	}

	records := make([]domain.ReviewRecord, 0, len(rows))
	for _, r := range rows {
		wordID, err := uuid.Parse(r.WordID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse word ID %q: %w", r.WordID, err)
		}
		records = append(records, domain.ReviewRecord{
			WordID:         wordID,
			ReviewedAt:     r.ReviewedAt,
			Outcome:        domain.ReviewOutcome(r.Outcome),
			IntervalBefore: time.Duration(r.IntervalBeforeNS),
			IntervalAfter:  time.Duration(r.IntervalAfterNS),
		})
	}
	return records, nil
}
