// Package notify delivers best-effort desktop notifications about focus
// sessions
package notify

import (
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"
)

// Notifier is a fire-and-forget notification sink.
type Notifier interface {
	// RequestPermission reports whether notifications may be shown.
	RequestPermission() bool
	Notify(title, body string) error
}

// Desktop shows notifications through the operating system. Delivery happens
// in the background so a slow notification daemon never holds up the
// caller.
type Desktop struct {
	logger *slog.Logger
	// IconPath is shown next to the notification if the file exists.
	IconPath string
	wg       sync.WaitGroup
}

func NewDesktop(iconPath string, logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.Default()
	}

	return &Desktop{
		IconPath: iconPath,
		logger:   logger,
	}
}

// RequestPermission always succeeds: desktop notifications need no grant
// from the user, and delivery failures are logged instead.
func (d *Desktop) RequestPermission() bool {
	return true
}

func (d *Desktop) Notify(title, body string) error {
	d.wg.Add(1)

	go func() {
		defer d.wg.Done()

		err := beeep.Notify(title, body, d.IconPath)
		if err != nil {
			d.logger.Debug(
				"unable to display notification",
				slog.String("title", title),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Wait blocks until notifications in flight have been handed to the
// operating system.
func (d *Desktop) Wait() {
	d.wg.Wait()
}

// Noop discards notifications.
type Noop struct{}

func (Noop) RequestPermission() bool { return false }

func (Noop) Notify(string, string) error { return nil }

// Message is a notification captured by Recorder.
type Message struct {
	Title string
	Body  string
}

// Recorder keeps every notification it receives. Err is returned from
// Notify after the message is recorded; Denied makes RequestPermission fail.
type Recorder struct {
	Err      error
	messages []Message
	mu       sync.Mutex
	Denied   bool
}

func (r *Recorder) RequestPermission() bool {
	return !r.Denied
}

func (r *Recorder) Notify(title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, Message{Title: title, Body: body})

	return r.Err
}

// Messages returns the notifications received so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Message(nil), r.messages...)
}
