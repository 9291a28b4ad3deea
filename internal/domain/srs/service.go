package srs

import (
	"errors"
	"time"

	"github.com/daylex/daylex/internal/domain"
)

// Common errors
var (
	ErrNilState       = errors.New("learning state cannot be nil")
	ErrInvalidOutcome = errors.New("invalid review outcome")
	ErrWordSuspended  = errors.New("word is suspended and cannot be reviewed")
	ErrInvalidDays    = errors.New("postpone days must be at least 1")
)

// Service defines the interface for scheduling operations.
type Service interface {
	// CalculateNextReview computes the new state for a review outcome.
	// It fails with ErrInvalidOutcome for an unknown grade and with
	// ErrWordSuspended when invoked on a suspended word; the caller must
	// resume the word explicitly first.
	CalculateNextReview(
		state *domain.LearningState,
		outcome domain.ReviewOutcome,
		now time.Time,
	) (*domain.LearningState, error)

	// PostponeReview pushes the next review time forward by a number of
	// days without altering the algorithm state.
	PostponeReview(
		state *domain.LearningState,
		days int,
		now time.Time,
	) (*domain.LearningState, error)

	// Params exposes the algorithm parameters in use.
	Params() *Params
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// CalculateNextReview implements the Service interface.
func (s *defaultService) CalculateNextReview(
	state *domain.LearningState,
	outcome domain.ReviewOutcome,
	now time.Time,
) (*domain.LearningState, error) {
	if state == nil {
		return nil, ErrNilState
	}

	if !outcome.IsValid() {
		return nil, ErrInvalidOutcome
	}

	if state.Stage == domain.StageSuspended {
		return nil, ErrWordSuspended
	}

	return calculateNextState(state, outcome, now, s.params), nil
}

// PostponeReview implements the Service interface.
func (s *defaultService) PostponeReview(
	state *domain.LearningState,
	days int,
	now time.Time,
) (*domain.LearningState, error) {
	if state == nil {
		return nil, ErrNilState
	}

	if days < 1 {
		return nil, ErrInvalidDays
	}

	if state.Stage == domain.StageSuspended {
		return nil, ErrWordSuspended
	}

	next := state.Clone()
	if !next.DueAt.IsZero() {
		next.DueAt = next.DueAt.AddDate(0, 0, days)
	}
	next.UpdatedAt = now

	return next, nil
}

// Params implements the Service interface.
func (s *defaultService) Params() *Params {
	return s.params
}
