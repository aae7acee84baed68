// Package session runs focus sessions: it owns the countdown of the active
// session and hands a record of every finished session to the session log
package session

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ayoisaiah/locktfin/internal/clock"
	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/notify"
	"github.com/ayoisaiah/locktfin/internal/timeutil"
)

const (
	// TickInterval is the time between two countdown decrements.
	TickInterval = time.Minute

	DefaultDateLayout = "1/2/2006"
)

// Recorder stores finished sessions.
type Recorder interface {
	Append(rec models.SessionRecord) (models.SessionRecord, error)
}

// Option configures a Controller.
type Option func(*Controller)

func WithClock(c clock.Clock) Option {
	return func(ctrl *Controller) {
		ctrl.clock = c
	}
}

func WithNotifier(n notify.Notifier) Option {
	return func(ctrl *Controller) {
		ctrl.notifier = n
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(ctrl *Controller) {
		ctrl.logger = l
	}
}

// WithTickInterval changes how much time one countdown unit takes.
func WithTickInterval(d time.Duration) Option {
	return func(ctrl *Controller) {
		if d > 0 {
			ctrl.interval = d
		}
	}
}

// WithDateLayout sets the time layout used for SessionRecord.Date.
func WithDateLayout(layout string) Option {
	return func(ctrl *Controller) {
		if layout != "" {
			ctrl.dateLayout = layout
		}
	}
}

// OnEnd registers fn to be called with the record of every finished session.
// It runs after the controller is back to idle.
func OnEnd(fn func(models.SessionRecord)) Option {
	return func(ctrl *Controller) {
		ctrl.onEnd = append(ctrl.onEnd, fn)
	}
}

// Controller runs at most one focus session at a time. All methods are safe
// for concurrent use; each state transition completes before the next
// operation is accepted.
type Controller struct {
	startedAt  time.Time
	lastEnd    time.Time
	clock      clock.Clock
	notifier   notify.Notifier
	recorder   Recorder
	logger     *slog.Logger
	pending    *clock.Timer
	last       *models.SessionRecord
	dateLayout string
	onEnd      []func(models.SessionRecord)
	cfg        models.SessionConfig
	interval   time.Duration
	generation uint64
	remaining  int
	status     models.Status
	ending     sync.WaitGroup
	mu         sync.Mutex
	// announce orders the start notification of a session before its end
	// notification
	announce   sync.Mutex
}

// New returns an idle controller that hands finished sessions to rec.
func New(rec Recorder, opts ...Option) *Controller {
	c := &Controller{
		recorder:   rec,
		clock:      clock.Real(),
		notifier:   notify.Noop{},
		logger:     slog.Default(),
		interval:   TickInterval,
		dateLayout: DefaultDateLayout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start begins a session for cfg. It fails without touching the current
// state if cfg is invalid or a session is already active.
func (c *Controller) Start(cfg models.SessionConfig) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	c.mu.Lock()

	if c.status == models.Active {
		c.mu.Unlock()
		return ErrSessionActive
	}

	// a tick left over from an earlier session must never reach this one
	c.pending.Stop()

	c.generation++
	c.cfg = cfg.Clone()
	c.remaining = cfg.PlannedDurationMinutes
	c.startedAt = c.clock.Now()
	c.status = models.Active
	c.schedule(c.generation)

	c.announce.Lock()
	defer c.announce.Unlock()

	c.mu.Unlock()

	c.logger.Info(
		"focus session started",
		slog.Int("planned", cfg.PlannedDurationMinutes),
		slog.Any("apps", cfg.Names()),
	)

	c.notify(
		"Focus session started",
		fmt.Sprintf(
			"%s with %s. Stay focused!",
			timeutil.FormatMinutes(cfg.PlannedDurationMinutes),
			strings.Join(cfg.Names(), ", "),
		),
	)

	return nil
}

// EmergencyExit ends the active session early. It reports whether there was
// a session to end; calling it while idle does nothing.
func (c *Controller) EmergencyExit() bool {
	c.mu.Lock()

	if c.status != models.Active {
		c.mu.Unlock()
		return false
	}

	rec := c.finish(false)

	c.mu.Unlock()

	c.ended(rec)

	return true
}

// Wait blocks until the notifications and end hooks of every session that
// has already returned to idle have run. Call it only once the controller is
// idle and no further session will be started.
func (c *Controller) Wait() {
	c.ending.Wait()
}

// State returns a snapshot of the controller.
func (c *Controller) State() models.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return models.SessionState{
		Status:           c.status,
		RemainingMinutes: c.remaining,
		StartedAt:        c.startedAt,
		Config:           c.cfg.Clone(),
	}
}

// Last returns the record of the most recent session this controller ended.
func (c *Controller) Last() (models.SessionRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last == nil {
		return models.SessionRecord{}, false
	}

	rec := *c.last
	rec.AppsUsed = append([]string(nil), c.last.AppsUsed...)

	return rec, true
}

// Interval returns the duration of one countdown unit.
func (c *Controller) Interval() time.Duration {
	return c.interval
}

// schedule arranges for the next tick of the given activation. c.mu must be
// held.
func (c *Controller) schedule(generation uint64) {
	c.pending = c.clock.AfterFunc(c.interval, func() {
		c.tick(generation)
	})
}

func (c *Controller) tick(generation uint64) {
	c.mu.Lock()

	if c.status != models.Active || generation != c.generation {
		c.mu.Unlock()
		c.logger.Debug("ignoring stale tick", slog.Uint64("generation", generation))

		return
	}

	c.remaining--

	if c.remaining > 0 {
		c.schedule(generation)
		c.mu.Unlock()

		return
	}

	rec := c.finish(true)

	c.mu.Unlock()

	c.ended(rec)
}

// finish moves the active session to idle and records its outcome. c.mu must
// be held.
func (c *Controller) finish(completed bool) models.SessionRecord {
	c.ending.Add(1)

	c.pending.Stop()
	c.pending = nil
	c.generation++

	actual := c.cfg.PlannedDurationMinutes
	if !completed {
		actual = c.cfg.PlannedDurationMinutes - c.remaining
	}

	// record IDs are millisecond timestamps and must stay unique
	endedAt := c.clock.Now()
	if !endedAt.After(c.lastEnd) && !c.lastEnd.IsZero() {
		endedAt = c.lastEnd.Add(time.Millisecond)
	}

	c.lastEnd = endedAt

	rec := models.NewRecord(endedAt, c.dateLayout, c.cfg, actual, completed)

	saved, err := c.recorder.Append(rec)
	if err != nil {
		c.logger.Error(
			"unable to record session",
			slog.String("id", rec.ID),
			slog.Any("error", err),
		)
	} else {
		rec = saved
	}

	c.last = &rec

	c.status = models.Idle
	c.remaining = 0
	c.startedAt = time.Time{}
	c.cfg = models.SessionConfig{}

	return rec
}

// ended runs the side effects of a finished session. c.mu must not be held.
func (c *Controller) ended(rec models.SessionRecord) {
	defer c.ending.Done()

	c.logger.Info(
		"focus session ended",
		slog.String("id", rec.ID),
		slog.Bool("completed", rec.Completed),
		slog.Int("duration", rec.ActualDurationMinutes),
	)

	c.announce.Lock()

	if rec.Completed {
		c.notify(
			"Focus session complete",
			fmt.Sprintf(
				"You stayed focused for %s.",
				timeutil.FormatMinutes(rec.ActualDurationMinutes),
			),
		)
	} else {
		c.notify(
			"Focus session ended early",
			fmt.Sprintf(
				"You focused for %s of %s.",
				timeutil.FormatMinutes(rec.ActualDurationMinutes),
				timeutil.FormatMinutes(rec.PlannedDurationMinutes),
			),
		)
	}

	c.announce.Unlock()

	for _, fn := range c.onEnd {
		fn(rec)
	}
}

func (c *Controller) notify(title, body string) {
	if !c.notifier.RequestPermission() {
		return
	}

	err := c.notifier.Notify(title, body)
	if err != nil {
		c.logger.Debug("notification failed", slog.Any("error", err))
	}
}
