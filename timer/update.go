package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/locktfin/internal/models"
)

// exit ends the active session early and quits the program.
func (t *Timer) exit() (tea.Model, tea.Cmd) {
	if t.ctrl.EmergencyExit() {
		t.logger.Info("session ended by user")
	}

	t.sync()

	t.quitting = true

	return t, tea.Quit
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.logger.Debug("key press", slog.String("msg", spew.Sdump(msg)))

	switch {
	case key.Matches(msg, t.keys.exit):
		return t.exit()

	case key.Matches(msg, t.keys.quit):
		return t.exit()
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		t.sync()

		if t.state.Status != models.Active {
			t.quitting = true

			return t, tea.Quit
		}

		return t, refresh()

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
