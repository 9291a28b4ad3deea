package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for configuration environment variables,
// e.g. DAYLEX_SERVER_PORT overrides server.port.
const envPrefix = "DAYLEX"

// Load configuration from environment variables and optionally a config file
// (daylex.yaml in the working directory). Environment variables take
// precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("daylex")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults carry it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers the default value for every key so viper picks up
// env overrides even without a config file present.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.path", "data/daylex.db")

	v.SetDefault("study.new_word_quota", 10)
	v.SetDefault("study.review_quota", 50)
	v.SetDefault("study.difficulty_min", 1)
	v.SetDefault("study.difficulty_max", 5)
	v.SetDefault("study.interleave", false)
	v.SetDefault("study.reminder_time", "08:00")
	v.SetDefault("study.retention_days", 30)

	v.SetDefault("srs.min_ease", 1.3)
	v.SetDefault("srs.max_ease", 2.5)
	v.SetDefault("srs.default_ease", 2.5)
	v.SetDefault("srs.seed_interval_hard_days", 1)
	v.SetDefault("srs.seed_interval_good_days", 1)
	v.SetDefault("srs.seed_interval_easy_days", 2)
	v.SetDefault("srs.relearn_minutes", 10)
	v.SetDefault("srs.max_interval_days", 365)
	v.SetDefault("srs.reviewing_threshold", 2)
	v.SetDefault("srs.mastered_streak", 5)
	v.SetDefault("srs.mastered_horizon_days", 21)
}
