// Package config loads locktfin settings from the config file and the
// command line
package config

import (
	"github.com/ayoisaiah/locktfin/internal/apperr"
	"github.com/ayoisaiah/locktfin/internal/models"
)

type (
	// Config holds all configuration settings
	Config struct {
		Session       SessionConfig        `mapstructure:"session"`
		Notifications NotificationConfig   `mapstructure:"notifications"`
		Settings      SettingsConfig       `mapstructure:"settings"`
		Display       DisplayConfig        `mapstructure:"display"`
		Apps          []models.Application `mapstructure:"apps"`
		CLI           CLIConfig            `mapstructure:"-"`
	}

	// SessionConfig holds session-related settings
	SessionConfig struct {
		// Duration is the default session length in minutes
		Duration int   `mapstructure:"duration"`
		Presets  []int `mapstructure:"presets"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SettingsConfig holds behaviour settings
	SettingsConfig struct {
		Cmd     string `mapstructure:"cmd"`
		ExitKey string `mapstructure:"exit_key"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DateFormat string `mapstructure:"date_format"`
		DarkTheme  bool   `mapstructure:"dark_theme"`
	}

	// CLIConfig holds values that only come from the command line
	CLIConfig struct {
		Apps     []string
		Duration int
		// DurationSet tells an explicit --duration 0 apart from no flag
		DurationSet bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var errConfigOption = &apperr.Error{
	Message: "config option error",
}

// New creates a new Config by applying each option in turn and validating
// the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PlannedDuration is the session length to use: the command line value if
// given, the configured default otherwise.
func (c *Config) PlannedDuration() int {
	if c.CLI.DurationSet {
		return c.CLI.Duration
	}

	return c.Session.Duration
}
