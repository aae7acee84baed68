package config

import (
	"strings"

	"github.com/ayoisaiah/locktfin/internal/session"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateDuration("default session duration", c.Session.Duration); err != nil {
		return err
	}

	if c.CLI.DurationSet {
		if err := validateDuration("--duration", c.CLI.Duration); err != nil {
			return err
		}
	}

	if len(c.Session.Presets) == 0 {
		return errNoPresets
	}

	for _, p := range c.Session.Presets {
		if err := validateDuration("duration preset", p); err != nil {
			return err
		}
	}

	if err := c.validateApps(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Settings.ExitKey) == "" {
		return errEmptyExitKey
	}

	if strings.TrimSpace(c.Display.DateFormat) == "" {
		return errEmptyDateFormat
	}

	return nil
}

func validateDuration(name string, d int) error {
	if d < session.MinDurationMinutes || d > session.MaxDurationMinutes {
		return errInvalidDuration.Fmt(
			name,
			session.MinDurationMinutes,
			session.MaxDurationMinutes,
			d,
		)
	}

	return nil
}

// validateApps checks the catalog entries from the config file.
func (c *Config) validateApps() error {
	seen := make(map[string]struct{}, len(c.Apps))

	for i, app := range c.Apps {
		if strings.TrimSpace(app.Name) == "" || strings.TrimSpace(app.Path) == "" {
			return errInvalidApp.Fmt(i + 1)
		}

		if _, ok := seen[app.Path]; ok {
			return errDuplicateApp.Fmt(app.Path)
		}

		seen[app.Path] = struct{}{}
	}

	return nil
}
