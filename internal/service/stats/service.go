// Package stats aggregates study statistics from the stored review history.
// All of its operations are read-only.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/platform/logger"
	"github.com/daylex/daylex/internal/store"
)

const dayFormat = "2006-01-02"

// Summary is a snapshot of catalog and study progress at a moment in time.
type Summary struct {
	TotalWords    int                  `json:"total_words"`
	StageCounts   map[domain.Stage]int `json:"stage_counts"`
	MasteredCount int                  `json:"mastered_count"`
	DueCount      int                  `json:"due_count"`
	ReviewsToday  int                  `json:"reviews_today"`
	TotalReviews  int                  `json:"total_reviews"`

	// RetentionRate is the share of non-again outcomes over the configured
	// trailing window, or zero with no reviews in the window.
	RetentionRate float64 `json:"retention_rate"`

	// StreakDays counts consecutive calendar days with at least one review,
	// walking back from today, or from yesterday when today has none yet.
	StreakDays int `json:"streak_days"`

	// DailyReviews maps the last RetentionDays calendar days to their review
	// counts. Days without reviews are absent.
	DailyReviews map[string]int `json:"daily_reviews"`
}

// WordProgress is the per-word view: current state plus full history.
type WordProgress struct {
	Word    *domain.Word          `json:"word"`
	State   *domain.LearningState `json:"state"`
	History []domain.ReviewRecord `json:"history"`
}

// Config bounds the trailing windows used by Summary.
type Config struct {
	// RetentionDays is the window for the retention rate and the daily
	// review counts.
	RetentionDays int
}

// Service computes aggregate statistics.
type Service struct {
	wordStore  store.WordStore
	statsStore store.StatsStore
	cfg        Config
	logger     *slog.Logger
}

// NewService creates a stats Service.
func NewService(
	wordStore store.WordStore,
	statsStore store.StatsStore,
	cfg Config,
	log *slog.Logger,
) *Service {
	if wordStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("wordStore cannot be nil")
	}
	if statsStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("statsStore cannot be nil")
	}
	if cfg.RetentionDays < 1 {
		cfg.RetentionDays = 30
	}
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		wordStore:  wordStore,
		statsStore: statsStore,
		cfg:        cfg,
		logger:     log.With(slog.String("component", "stats_service")),
	}
}

// Summary assembles the study snapshot for the given moment. All times are
// interpreted in UTC, matching how reviews are recorded.
func (s *Service) Summary(ctx context.Context, now time.Time) (*Summary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	now = now.UTC()

	total, err := s.wordStore.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count words: %w", err)
	}

	stageCounts, err := s.statsStore.StageCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stages: %w", err)
	}

	dueCount, err := s.statsStore.CountScheduledBefore(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count due words: %w", err)
	}

	allOutcomes, err := s.statsStore.OutcomeCounts(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to count outcomes: %w", err)
	}
	totalReviews := 0
	for _, n := range allOutcomes {
		totalReviews += n
	}

	windowStart := startOfDay(now).AddDate(0, 0, -(s.cfg.RetentionDays - 1))
	windowOutcomes, err := s.statsStore.OutcomeCounts(ctx, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count window outcomes: %w", err)
	}
	retention := retentionRate(windowOutcomes)

	daily, err := s.statsStore.DailyReviewCounts(ctx, windowStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count daily reviews: %w", err)
	}

	days, err := s.statsStore.ReviewDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list review days: %w", err)
	}

	summary := &Summary{
		TotalWords:    total,
		StageCounts:   stageCounts,
		MasteredCount: stageCounts[domain.StageMastered],
		DueCount:      dueCount,
		ReviewsToday:  daily[now.Format(dayFormat)],
		TotalReviews:  totalReviews,
		RetentionRate: retention,
		StreakDays:    streak(days, now),
		DailyReviews:  daily,
	}

	log.Debug("summary computed",
		slog.Int("total_words", summary.TotalWords),
		slog.Int("due_count", summary.DueCount),
		slog.Int("streak_days", summary.StreakDays))

	return summary, nil
}

// WordProgress returns the per-word view. Fails with store.ErrWordNotFound
// for an unknown ID.
func (s *Service) WordProgress(ctx context.Context, id uuid.UUID) (*WordProgress, error) {
	word, err := s.wordStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	state, err := s.wordStore.GetState(ctx, id)
	if err != nil {
		return nil, err
	}

	history, err := s.statsStore.HistoryForWord(ctx, id)
	if err != nil {
		return nil, err
	}

	return &WordProgress{
		Word:    word,
		State:   state,
		History: history,
	}, nil
}

// retentionRate is the share of successful grades among all grades.
func retentionRate(outcomes map[domain.ReviewOutcome]int) float64 {
	total := 0
	for _, n := range outcomes {
		total += n
	}
	if total == 0 {
		return 0
	}

	correct := outcomes[domain.ReviewOutcomeHard] +
		outcomes[domain.ReviewOutcomeGood] +
		outcomes[domain.ReviewOutcomeEasy]

	return float64(correct) / float64(total)
}

// streak counts consecutive review days ending today, or ending yesterday
// when today has no reviews yet. days must be sorted most recent first.
func streak(days []string, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	cursor := startOfDay(now)
	if days[0] != cursor.Format(dayFormat) {
		// Today has no reviews; a streak ending yesterday still counts.
		cursor = cursor.AddDate(0, 0, -1)
	}

	count := 0
	for _, day := range days {
		if day != cursor.Format(dayFormat) {
			break
		}
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return count
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
