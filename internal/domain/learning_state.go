package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewOutcome represents the result of a word review.
type ReviewOutcome string

// Possible review outcome values. The set is closed; anything else is
// rejected at the boundary with ErrInvalidReviewOutcome.
const (
	ReviewOutcomeAgain ReviewOutcome = "again"
	ReviewOutcomeHard  ReviewOutcome = "hard"
	ReviewOutcomeGood  ReviewOutcome = "good"
	ReviewOutcomeEasy  ReviewOutcome = "easy"
)

// IsValid reports whether the outcome is one of the four grades.
func (o ReviewOutcome) IsValid() bool {
	switch o {
	case ReviewOutcomeAgain, ReviewOutcomeHard, ReviewOutcomeGood, ReviewOutcomeEasy:
		return true
	default:
		return false
	}
}

// Stage is the coarse learning-progress category of a word.
type Stage string

// Possible learning stages.
const (
	StageNew       Stage = "new"
	StageLearning  Stage = "learning"
	StageReviewing Stage = "reviewing"
	StageMastered  Stage = "mastered"
	StageSuspended Stage = "suspended"
)

// IsValid reports whether the stage is a known value.
func (s Stage) IsValid() bool {
	switch s {
	case StageNew, StageLearning, StageReviewing, StageMastered, StageSuspended:
		return true
	default:
		return false
	}
}

// Common validation errors for LearningState
var (
	ErrEmptyStateWordID    = errors.New("learning state word ID cannot be empty")
	ErrInvalidInterval     = errors.New("interval must be greater than or equal to 0")
	ErrInvalidEase         = errors.New("ease must be greater than 1.0")
	ErrDueBeforeLastReview = errors.New("due time cannot precede the last review time")
)

// ReviewRecord is a single entry in a word's append-only review history.
type ReviewRecord struct {
	WordID         uuid.UUID     `json:"word_id"`
	ReviewedAt     time.Time     `json:"reviewed_at"`
	Outcome        ReviewOutcome `json:"outcome"`
	IntervalBefore time.Duration `json:"interval_before"`
	IntervalAfter  time.Duration `json:"interval_after"`
}

// LearningState tracks scheduling state for a single word. There is exactly
// one per Word, owned by the word store. A word in StageNew is unscheduled:
// LastReviewedAt and DueAt stay zero until the first recorded outcome.
type LearningState struct {
	WordID             uuid.UUID     `json:"word_id"`
	Stage              Stage         `json:"stage"`
	Interval           time.Duration `json:"interval"`
	Ease               float64       `json:"ease"`
	ConsecutiveCorrect int           `json:"consecutive_correct"`
	ReviewCount        int           `json:"review_count"`
	LastReviewedAt     time.Time     `json:"last_reviewed_at"`
	DueAt              time.Time     `json:"due_at"`

	// SuspendedFrom remembers the stage to restore on resume.
	// Empty unless Stage is StageSuspended.
	SuspendedFrom Stage `json:"suspended_from,omitempty"`

	// Version is the optimistic concurrency stamp. Every successful apply
	// increments it; an apply against a stale version fails with a conflict.
	Version int64 `json:"version"`

	// History is the append-only review log, oldest first.
	History []ReviewRecord `json:"history,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLearningState creates the initial state for a freshly imported word:
// StageNew, zero interval, default ease, unscheduled.
func NewLearningState(wordID uuid.UUID, defaultEase float64) (*LearningState, error) {
	now := time.Now().UTC()
	state := &LearningState{
		WordID:    wordID,
		Stage:     StageNew,
		Interval:  0,
		Ease:      defaultEase,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return state, nil
}

// Validate checks if the LearningState has valid data.
// Returns an error if any field fails validation.
func (s *LearningState) Validate() error {
	if s.WordID == uuid.Nil {
		return ErrEmptyStateWordID
	}

	if !s.Stage.IsValid() {
		return ErrInvalidStage
	}

	if s.Interval < 0 {
		return ErrInvalidInterval
	}

	if s.Ease <= 1.0 {
		return ErrInvalidEase
	}

	if !s.DueAt.IsZero() && !s.LastReviewedAt.IsZero() && s.DueAt.Before(s.LastReviewedAt) {
		return ErrDueBeforeLastReview
	}

	return nil
}

// Clone returns a deep copy of the state, including its history slice.
// The scheduler works on copies so a failed apply never leaves a
// half-mutated state visible to the caller.
func (s *LearningState) Clone() *LearningState {
	clone := *s
	if s.History != nil {
		clone.History = make([]ReviewRecord, len(s.History))
		copy(clone.History, s.History)
	}
	return &clone
}

// Scheduled reports whether the word has been reviewed at least once and
// therefore carries a due timestamp.
func (s *LearningState) Scheduled() bool {
	return !s.DueAt.IsZero()
}
