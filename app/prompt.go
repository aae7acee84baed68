package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/locktfin/internal/catalog"
	"github.com/ayoisaiah/locktfin/internal/config"
	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/session"
	"github.com/ayoisaiah/locktfin/internal/timeutil"
)

// customDuration is the select value that asks for a duration in minutes.
const customDuration = 0

// promptSession asks for the applications and duration of a session.
func promptSession(
	cat *catalog.Catalog,
	cfg *config.Config,
) (models.SessionConfig, error) {
	var (
		paths    []string
		duration = cfg.PlannedDuration()
		custom   string
	)

	_ = putils.BulletListFromString(`Select the applications you will allow during this session.
Press SPACE to toggle an application and ENTER to continue.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Allowed applications").
				Options(appOptions(cat.Sorted())...).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return session.ErrNoApps
					}

					return nil
				}).
				Value(&paths),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Session length").
				Options(durationOptions(cfg.Session.Presets, duration)...).
				Value(&duration),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Session length in minutes").
				Validate(func(s string) error {
					_, err := parseMinutes(s)
					return err
				}).
				Value(&custom),
		).WithHideFunc(func() bool {
			return duration != customDuration
		}),
	)

	err := form.Run()
	if err != nil {
		return models.SessionConfig{}, fmt.Errorf("form interaction failed: %w", err)
	}

	if duration == customDuration {
		duration, err = parseMinutes(custom)
		if err != nil {
			return models.SessionConfig{}, err
		}
	}

	apps, _ := cat.Resolve(paths)

	return models.SessionConfig{
		SelectedApps:           apps,
		PlannedDurationMinutes: duration,
	}, nil
}

func appOptions(apps []models.Application) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(apps))

	for _, app := range apps {
		label := app.Name
		if app.Icon != "" {
			label = app.Icon + " " + app.Name
		}

		opts = append(opts, huh.NewOption(label, app.Path))
	}

	return opts
}

// durationOptions lists the presets followed by a custom entry. The preset
// equal to def is preselected; if none is, def gets its own entry.
func durationOptions(presets []int, def int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(presets)+2)

	found := false

	for _, p := range presets {
		selected := p == def
		found = found || selected

		opts = append(
			opts,
			huh.NewOption(timeutil.FormatMinutes(p), p).Selected(selected),
		)
	}

	if !found && def > 0 {
		opts = append(
			[]huh.Option[int]{
				huh.NewOption(timeutil.FormatMinutes(def), def).Selected(true),
			},
			opts...,
		)
	}

	return append(opts, huh.NewOption("Custom", customDuration))
}

// parseMinutes reads a custom session length.
func parseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errInvalidMinutes.Fmt(s)
	}

	if n < session.MinDurationMinutes || n > session.MaxDurationMinutes {
		return 0, session.ErrInvalidDuration.Fmt(
			session.MinDurationMinutes,
			session.MaxDurationMinutes,
			n,
		)
	}

	return n, nil
}
