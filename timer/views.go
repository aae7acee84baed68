package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/timeutil"
)

func (t *Timer) appsView() string {
	apps := make([]string, 0, len(t.state.Config.SelectedApps))

	for _, app := range t.state.Config.SelectedApps {
		if app.Icon != "" {
			apps = append(apps, app.Icon+" "+app.Name)
			continue
		}

		apps = append(apps, app.Name)
	}

	return strings.Join(apps, "  ")
}

func (t *Timer) timerView() string {
	var s strings.Builder

	end := endTime(t.state, t.ctrl.Interval())
	left := end.Sub(t.clock.Now())
	planned := t.state.Config.PlannedDurationMinutes

	s.WriteString(t.style.title.Render("Focus session"))
	s.WriteString(
		t.style.hint.Render(
			fmt.Sprintf(
				" %s, until %s",
				timeutil.FormatMinutes(planned),
				end.Format("3:04 PM"),
			),
		),
	)
	s.WriteString("\n\n")
	s.WriteString(t.style.secondary.Render(t.appsView()))
	s.WriteString("\n\n")
	s.WriteString(t.style.main.Render(formatRemaining(left)))
	s.WriteString(
		t.style.hint.Render(
			fmt.Sprintf(" (%d min remaining)", t.state.RemainingMinutes),
		),
	)
	s.WriteString("\n\n")

	var percent float64
	if planned > 0 {
		percent = float64(t.state.ElapsedMinutes()) / float64(planned)
	}

	s.WriteString(t.progress.ViewAs(percent))
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		t.keys.exit,
		t.keys.quit,
	}))

	return s.String()
}

func (t *Timer) View() string {
	if t.quitting || t.state.Status != models.Active {
		return ""
	}

	return t.style.base.Render(t.timerView())
}
