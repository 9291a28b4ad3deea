package srs

import (
	"time"

	"github.com/daylex/daylex/internal/domain"
)

// calculateNewEase determines the new ease factor based on the review outcome.
//
// The ease factor bounds how fast intervals grow: higher values mean the word
// is easier and its intervals stretch faster. The adjustment per outcome comes
// from the params and the result is always clamped to [MinEase, MaxEase], so
// a single failure can never collapse scheduling below the configured floor.
func calculateNewEase(currentEase float64, outcome domain.ReviewOutcome, params *Params) float64 {
	newEase := currentEase + params.EaseAdjustment[outcome]

	if newEase < params.MinEase {
		newEase = params.MinEase
	}
	if newEase > params.MaxEase {
		newEase = params.MaxEase
	}

	return newEase
}

// calculateNewInterval determines the interval until the next review.
//
// Cases, in order:
//   - Again resets to the short fixed relearning interval.
//   - The first successful review of a word (interval still zero) uses the
//     configured seed interval for the outcome instead of multiplying zero.
//   - A Good outcome right after a lapse (consecutive correct was reset but
//     an interval exists) uses the lapse-recovery modifier rather than the
//     full ease factor.
//   - Otherwise Good multiplies by the ease factor, Hard by its reduced
//     modifier, Easy by its increased modifier times the ease factor.
//
// The result never exceeds params.MaxInterval.
func calculateNewInterval(
	currentInterval time.Duration,
	consecutiveCorrect int,
	ease float64,
	outcome domain.ReviewOutcome,
	params *Params,
) time.Duration {
	if outcome == domain.ReviewOutcomeAgain {
		return params.RelearnInterval
	}

	var next time.Duration
	switch {
	case currentInterval == 0:
		next = params.SeedIntervals[outcome]

	case consecutiveCorrect == 0 && outcome == domain.ReviewOutcomeGood:
		next = time.Duration(float64(currentInterval) * params.LapseRecoveryModifier)

	case outcome == domain.ReviewOutcomeGood:
		next = time.Duration(float64(currentInterval) * ease)

	default:
		modifier := params.IntervalModifier[outcome]
		if outcome == domain.ReviewOutcomeEasy {
			modifier *= ease
		}
		next = time.Duration(float64(currentInterval) * modifier)
	}

	if next > params.MaxInterval {
		next = params.MaxInterval
	}

	return next
}

// calculateNewStage determines the stage after a review.
//
// Again demotes any stage, including mastered, back to learning. Successful
// outcomes advance new -> learning -> reviewing as the consecutive-correct
// count crosses the configured threshold, and promote to mastered once both
// the interval horizon and the streak requirement are met. A mastered word
// stays mastered on success regardless of the other counters.
func calculateNewStage(
	currentStage domain.Stage,
	consecutiveCorrect int,
	interval time.Duration,
	outcome domain.ReviewOutcome,
	params *Params,
) domain.Stage {
	if outcome == domain.ReviewOutcomeAgain {
		return domain.StageLearning
	}

	if currentStage == domain.StageMastered {
		return domain.StageMastered
	}

	if interval >= params.MasteredHorizon && consecutiveCorrect >= params.MasteredStreak {
		return domain.StageMastered
	}

	if consecutiveCorrect >= params.ReviewingThreshold {
		return domain.StageReviewing
	}

	return domain.StageLearning
}

// calculateNextState creates the updated LearningState for a review outcome.
//
// It follows the immutable update pattern: the input state is never mutated;
// a deep copy carries the new interval, ease, stage, schedule, and the review
// record appended to the history. The version stamp is left untouched here;
// the store bumps it on apply.
func calculateNextState(
	state *domain.LearningState,
	outcome domain.ReviewOutcome,
	now time.Time,
	params *Params,
) *domain.LearningState {
	next := state.Clone()

	next.ReviewCount++
	next.LastReviewedAt = now
	next.Ease = calculateNewEase(state.Ease, outcome, params)

	if outcome == domain.ReviewOutcomeAgain {
		next.ConsecutiveCorrect = 0
	} else {
		next.ConsecutiveCorrect++
	}

	next.Interval = calculateNewInterval(
		state.Interval,
		state.ConsecutiveCorrect,
		next.Ease,
		outcome,
		params,
	)

	next.Stage = calculateNewStage(
		state.Stage,
		next.ConsecutiveCorrect,
		next.Interval,
		outcome,
		params,
	)

	next.DueAt = now.Add(next.Interval)
	next.UpdatedAt = now

	next.History = append(next.History, domain.ReviewRecord{
		WordID:         state.WordID,
		ReviewedAt:     now,
		Outcome:        outcome,
		IntervalBefore: state.Interval,
		IntervalAfter:  next.Interval,
	})

	return next
}
