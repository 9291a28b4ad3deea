package config

import (
	"time"

	"github.com/daylex/daylex/internal/domain/srs"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Study    StudyConfig    `mapstructure:"study" validate:"required"`
	SRS      SRSConfig      `mapstructure:"srs" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// StudyConfig contains the daily-plan settings: quotas, the difficulty band
// new words are drawn from, ordering policy, the reminder time, and the
// window used for the retention statistic.
type StudyConfig struct {
	NewWordQuota  int    `mapstructure:"new_word_quota" validate:"gte=0"`
	ReviewQuota   int    `mapstructure:"review_quota" validate:"gte=0"`
	DifficultyMin int    `mapstructure:"difficulty_min" validate:"gte=0,lte=5"`
	DifficultyMax int    `mapstructure:"difficulty_max" validate:"gte=0,lte=5,gtefield=DifficultyMin"`
	Interleave    bool   `mapstructure:"interleave"`
	ReminderTime  string `mapstructure:"reminder_time" validate:"omitempty,datetime=15:04"`
	RetentionDays int    `mapstructure:"retention_days" validate:"gt=0"`
}

// SRSConfig tunes the scheduling algorithm. Zero values fall back to the
// algorithm defaults; durations are expressed in days or minutes to keep
// the file format plain.
type SRSConfig struct {
	MinEase     float64 `mapstructure:"min_ease" validate:"omitempty,gt=1"`
	MaxEase     float64 `mapstructure:"max_ease" validate:"omitempty,gtefield=MinEase"`
	DefaultEase float64 `mapstructure:"default_ease" validate:"omitempty,gt=1"`

	SeedIntervalHardDays int `mapstructure:"seed_interval_hard_days" validate:"gte=0"`
	SeedIntervalGoodDays int `mapstructure:"seed_interval_good_days" validate:"gte=0"`
	SeedIntervalEasyDays int `mapstructure:"seed_interval_easy_days" validate:"gte=0"`

	RelearnMinutes  int `mapstructure:"relearn_minutes" validate:"gte=0"`
	MaxIntervalDays int `mapstructure:"max_interval_days" validate:"gte=0"`

	ReviewingThreshold  int `mapstructure:"reviewing_threshold" validate:"gte=0"`
	MasteredStreak      int `mapstructure:"mastered_streak" validate:"gte=0"`
	MasteredHorizonDays int `mapstructure:"mastered_horizon_days" validate:"gte=0"`
}

// ToParamsConfig converts the file-format values into algorithm parameters.
// Zero fields stay zero and fall back to the algorithm defaults.
func (c SRSConfig) ToParamsConfig() srs.ParamsConfig {
	const day = 24 * time.Hour

	return srs.ParamsConfig{
		MinEase:     c.MinEase,
		MaxEase:     c.MaxEase,
		DefaultEase: c.DefaultEase,

		SeedIntervalHard: time.Duration(c.SeedIntervalHardDays) * day,
		SeedIntervalGood: time.Duration(c.SeedIntervalGoodDays) * day,
		SeedIntervalEasy: time.Duration(c.SeedIntervalEasyDays) * day,

		RelearnInterval: time.Duration(c.RelearnMinutes) * time.Minute,
		MaxInterval:     time.Duration(c.MaxIntervalDays) * day,

		ReviewingThreshold: c.ReviewingThreshold,
		MasteredStreak:     c.MasteredStreak,
		MasteredHorizon:    time.Duration(c.MasteredHorizonDays) * day,
	}
}
