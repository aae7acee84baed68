// Package timer renders the countdown of an active focus session and binds
// the emergency exit key
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/locktfin/internal/clock"
	"github.com/ayoisaiah/locktfin/internal/models"
)

// refreshInterval is how often the view re-reads the session state.
const refreshInterval = time.Second

// Controller is the session state the timer renders.
type Controller interface {
	State() models.SessionState
	EmergencyExit() bool
	Last() (models.SessionRecord, bool)
	Interval() time.Duration
}

// Options configures a Timer.
type Options struct {
	Clock      clock.Clock
	Logger     *slog.Logger
	ExitKey    string
	StatusFile string
	DarkTheme  bool
}

// Timer is the bubbletea model of a running session.
type Timer struct {
	ctrl       Controller
	clock      clock.Clock
	logger     *slog.Logger
	record     *models.SessionRecord
	keys       keymap
	style      style
	state      models.SessionState
	statusFile string
	help       help.Model
	progress   progress.Model
	written    int
	quitting   bool
}

type refreshMsg time.Time

// New returns a Timer for the session currently run by ctrl.
func New(ctrl Controller, opts Options) *Timer {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	t := &Timer{
		ctrl:       ctrl,
		clock:      opts.Clock,
		logger:     opts.Logger,
		keys:       newKeymap(opts.ExitKey),
		style:      newStyle(opts.DarkTheme),
		statusFile: opts.StatusFile,
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient()),
		written:    -1,
	}

	t.sync()

	return t
}

// Result returns the record of the session once the timer has quit.
func (t *Timer) Result() (models.SessionRecord, bool) {
	if t.record == nil {
		return models.SessionRecord{}, false
	}

	return *t.record, true
}

func (t *Timer) Init() tea.Cmd {
	return refresh()
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(tm time.Time) tea.Msg {
		return refreshMsg(tm)
	})
}

// sync takes a fresh snapshot of the controller and keeps the status file
// and key bindings in step with it.
func (t *Timer) sync() {
	t.state = t.ctrl.State()

	active := t.state.Status == models.Active

	t.keys.exit.SetEnabled(active)

	if !active {
		if rec, ok := t.ctrl.Last(); ok {
			t.record = &rec
		}

		t.removeStatus()

		return
	}

	if t.state.RemainingMinutes != t.written {
		t.writeStatus()
	}
}

func (t *Timer) writeStatus() {
	if t.statusFile == "" {
		return
	}

	err := WriteStatus(t.statusFile, NewStatus(t.state, t.ctrl.Interval()))
	if err != nil {
		t.logger.Warn("status file not updated", slog.Any("error", err))
		return
	}

	t.written = t.state.RemainingMinutes
}

func (t *Timer) removeStatus() {
	if t.statusFile == "" {
		return
	}

	err := RemoveStatus(t.statusFile)
	if err != nil {
		t.logger.Warn("status file not removed", slog.Any("error", err))
	}
}
