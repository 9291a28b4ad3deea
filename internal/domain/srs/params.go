// Package srs implements the spaced-repetition scheduling algorithm.
// It is a pure computation layer: given a learning state and a review
// outcome it produces the next state, without touching any store.
package srs

import (
	"time"

	"github.com/daylex/daylex/internal/domain"
)

// Params defines all configurable parameters for the scheduling algorithm.
type Params struct {
	// Core limits
	MinEase     float64
	MaxEase     float64
	DefaultEase float64

	// Adjustments for different review outcomes
	EaseAdjustment   map[domain.ReviewOutcome]float64
	IntervalModifier map[domain.ReviewOutcome]float64

	// LapseRecoveryModifier is applied to a Good outcome right after a
	// lapse (consecutive correct is 0 but the interval is non-zero).
	LapseRecoveryModifier float64

	// Seed intervals for the first successful review of a word.
	SeedIntervals map[domain.ReviewOutcome]time.Duration

	// RelearnInterval is the short fixed interval after an Again outcome.
	RelearnInterval time.Duration

	// MaxInterval caps interval growth.
	MaxInterval time.Duration

	// Stage thresholds
	ReviewingThreshold int           // consecutive correct to enter reviewing
	MasteredStreak     int           // consecutive correct required for mastered
	MasteredHorizon    time.Duration // interval required for mastered
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values fall back to the defaults.
type ParamsConfig struct {
	MinEase     float64
	MaxEase     float64
	DefaultEase float64

	AgainEaseAdjustment float64
	HardEaseAdjustment  float64
	EasyEaseAdjustment  float64

	HardIntervalModifier  float64
	EasyIntervalModifier  float64
	LapseRecoveryModifier float64

	SeedIntervalHard time.Duration
	SeedIntervalGood time.Duration
	SeedIntervalEasy time.Duration

	RelearnInterval time.Duration
	MaxInterval     time.Duration

	ReviewingThreshold int
	MasteredStreak     int
	MasteredHorizon    time.Duration
}

const day = 24 * time.Hour

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinEase:     1.3,
		MaxEase:     2.5,
		DefaultEase: 2.5,

		EaseAdjustment: map[domain.ReviewOutcome]float64{
			domain.ReviewOutcomeAgain: -0.20,
			domain.ReviewOutcomeHard:  -0.15,
			domain.ReviewOutcomeGood:  0.0,
			domain.ReviewOutcomeEasy:  0.15,
		},

		IntervalModifier: map[domain.ReviewOutcome]float64{
			domain.ReviewOutcomeHard: 1.2, // slight growth
			domain.ReviewOutcomeGood: 1.0, // ease is applied directly
			domain.ReviewOutcomeEasy: 1.3, // on top of the ease factor
		},

		LapseRecoveryModifier: 1.5,

		SeedIntervals: map[domain.ReviewOutcome]time.Duration{
			domain.ReviewOutcomeHard: 1 * day,
			domain.ReviewOutcomeGood: 1 * day,
			domain.ReviewOutcomeEasy: 2 * day,
		},

		RelearnInterval: 10 * time.Minute,
		MaxInterval:     365 * day,

		ReviewingThreshold: 2,
		MasteredStreak:     5,
		MasteredHorizon:    21 * day,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEase > 0 {
		params.MinEase = config.MinEase
	}
	if config.MaxEase > 0 {
		params.MaxEase = config.MaxEase
	}
	if config.DefaultEase > 0 {
		params.DefaultEase = config.DefaultEase
	}

	if config.AgainEaseAdjustment != 0 {
		params.EaseAdjustment[domain.ReviewOutcomeAgain] = config.AgainEaseAdjustment
	}
	if config.HardEaseAdjustment != 0 {
		params.EaseAdjustment[domain.ReviewOutcomeHard] = config.HardEaseAdjustment
	}
	if config.EasyEaseAdjustment != 0 {
		params.EaseAdjustment[domain.ReviewOutcomeEasy] = config.EasyEaseAdjustment
	}

	if config.HardIntervalModifier > 0 {
		params.IntervalModifier[domain.ReviewOutcomeHard] = config.HardIntervalModifier
	}
	if config.EasyIntervalModifier > 0 {
		params.IntervalModifier[domain.ReviewOutcomeEasy] = config.EasyIntervalModifier
	}
	if config.LapseRecoveryModifier > 0 {
		params.LapseRecoveryModifier = config.LapseRecoveryModifier
	}

	if config.SeedIntervalHard > 0 {
		params.SeedIntervals[domain.ReviewOutcomeHard] = config.SeedIntervalHard
	}
	if config.SeedIntervalGood > 0 {
		params.SeedIntervals[domain.ReviewOutcomeGood] = config.SeedIntervalGood
	}
	if config.SeedIntervalEasy > 0 {
		params.SeedIntervals[domain.ReviewOutcomeEasy] = config.SeedIntervalEasy
	}

	if config.RelearnInterval > 0 {
		params.RelearnInterval = config.RelearnInterval
	}
	if config.MaxInterval > 0 {
		params.MaxInterval = config.MaxInterval
	}

	if config.ReviewingThreshold > 0 {
		params.ReviewingThreshold = config.ReviewingThreshold
	}
	if config.MasteredStreak > 0 {
		params.MasteredStreak = config.MasteredStreak
	}
	if config.MasteredHorizon > 0 {
		params.MasteredHorizon = config.MasteredHorizon
	}

	return params
}
