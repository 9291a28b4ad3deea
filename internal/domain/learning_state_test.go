package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLearningState(t *testing.T) {
	t.Parallel()

	wordID := uuid.New()
	state, err := NewLearningState(wordID, 2.5)
	require.NoError(t, err)

	assert.Equal(t, wordID, state.WordID)
	assert.Equal(t, StageNew, state.Stage)
	assert.Zero(t, state.Interval)
	assert.InDelta(t, 2.5, state.Ease, 0.0001)
	assert.Equal(t, int64(1), state.Version)
	assert.False(t, state.Scheduled(), "a new word carries no due time")
}

func TestNewLearningStateRejectsNilWordID(t *testing.T) {
	t.Parallel()
	_, err := NewLearningState(uuid.Nil, 2.5)
	assert.ErrorIs(t, err, ErrEmptyStateWordID)
}

func TestLearningStateValidate(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	valid := func() *LearningState {
		state, err := NewLearningState(uuid.New(), 2.5)
		require.NoError(t, err)
		return state
	}

	testCases := []struct {
		name        string
		mutate      func(*LearningState)
		expectedErr error
	}{
		{
			name:   "valid state passes",
			mutate: func(s *LearningState) {},
		},
		{
			name:        "negative interval fails",
			mutate:      func(s *LearningState) { s.Interval = -time.Hour },
			expectedErr: ErrInvalidInterval,
		},
		{
			name:        "ease at or below one fails",
			mutate:      func(s *LearningState) { s.Ease = 1.0 },
			expectedErr: ErrInvalidEase,
		},
		{
			name:        "unknown stage fails",
			mutate:      func(s *LearningState) { s.Stage = Stage("archived") },
			expectedErr: ErrInvalidStage,
		},
		{
			name: "due before last review fails",
			mutate: func(s *LearningState) {
				s.LastReviewedAt = now
				s.DueAt = now.Add(-time.Hour)
			},
			expectedErr: ErrDueBeforeLastReview,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			state := valid()
			tc.mutate(state)
			err := state.Validate()
			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestLearningStateClone(t *testing.T) {
	t.Parallel()

	state, err := NewLearningState(uuid.New(), 2.5)
	require.NoError(t, err)
	state.History = []ReviewRecord{
		{WordID: state.WordID, Outcome: ReviewOutcomeGood},
	}

	clone := state.Clone()
	clone.Stage = StageReviewing
	clone.History = append(clone.History, ReviewRecord{WordID: state.WordID, Outcome: ReviewOutcomeAgain})

	assert.Equal(t, StageNew, state.Stage, "mutating the clone must not touch the original")
	assert.Len(t, state.History, 1)
	assert.Len(t, clone.History, 2)
}

func TestReviewOutcomeIsValid(t *testing.T) {
	t.Parallel()

	for _, outcome := range []ReviewOutcome{ReviewOutcomeAgain, ReviewOutcomeHard, ReviewOutcomeGood, ReviewOutcomeEasy} {
		assert.True(t, outcome.IsValid(), "outcome %q should be valid", outcome)
	}
	assert.False(t, ReviewOutcome("perfect").IsValid())
	assert.False(t, ReviewOutcome("").IsValid())
}

func TestStageIsValid(t *testing.T) {
	t.Parallel()

	for _, stage := range []Stage{StageNew, StageLearning, StageReviewing, StageMastered, StageSuspended} {
		assert.True(t, stage.IsValid(), "stage %q should be valid", stage)
	}
	assert.False(t, Stage("archived").IsValid())
}
