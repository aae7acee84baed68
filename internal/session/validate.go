package session

import (
	"strings"

	"github.com/ayoisaiah/locktfin/internal/models"
)

const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480
)

// Validate reports why cfg cannot be used to start a session, if at all.
func Validate(cfg models.SessionConfig) error {
	if len(cfg.SelectedApps) == 0 {
		return ErrNoApps
	}

	seen := make(map[string]struct{}, len(cfg.SelectedApps))

	for _, app := range cfg.SelectedApps {
		if strings.TrimSpace(app.Name) == "" {
			return ErrEmptyAppName.Fmt(app.Path)
		}

		if _, ok := seen[app.Path]; ok {
			return ErrDuplicateApp.Fmt(app.Path)
		}

		seen[app.Path] = struct{}{}
	}

	d := cfg.PlannedDurationMinutes
	if d < MinDurationMinutes || d > MaxDurationMinutes {
		return ErrInvalidDuration.Fmt(MinDurationMinutes, MaxDurationMinutes, d)
	}

	return nil
}
