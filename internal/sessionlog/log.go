// Package sessionlog keeps the append-only history of finished focus
// sessions and derives statistics from it
package sessionlog

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/ayoisaiah/locktfin/internal/apperr"
	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/timeutil"
	"github.com/ayoisaiah/locktfin/store"
)

// Key is the name the history is stored under.
const Key = "locktfin-sessions"

var (
	errEncodeHistory = &apperr.Error{
		Message: "unable to encode session history",
	}

	errPersistHistory = &apperr.Error{
		Message: "unable to persist session history",
	}
)

// Log is the session history. Every append is written through to the store
// before it becomes visible.
type Log struct {
	kv      store.KV
	logger  *slog.Logger
	records []models.SessionRecord
	mu      sync.RWMutex
}

// New returns an empty Log backed by kv. Call Load to read the persisted
// history.
func New(kv store.KV, logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}

	return &Log{
		kv:     kv,
		logger: logger,
	}
}

// Load replaces the in-memory history with the persisted one. Missing or
// unreadable data results in an empty history.
func (l *Log) Load() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = nil

	b, err := l.kv.Get(Key)
	if err != nil {
		l.logger.Warn("reading session history failed", slog.Any("error", err))
		return
	}

	if len(b) == 0 {
		return
	}

	var records []models.SessionRecord

	err = json.Unmarshal(b, &records)
	if err != nil {
		l.logger.Warn(
			"session history is malformed, starting afresh",
			slog.Any("error", err),
		)

		return
	}

	l.records = records

	l.logger.Debug("session history loaded", slog.Int("count", len(records)))
}

// Append persists the history extended by rec and returns rec. The
// in-memory history is only extended once the write has succeeded.
func (l *Log) Append(rec models.SessionRecord) (models.SessionRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec.AppsUsed = slices.Clone(rec.AppsUsed)
	if rec.AppsUsed == nil {
		rec.AppsUsed = []string{}
	}

	updated := make([]models.SessionRecord, len(l.records), len(l.records)+1)
	copy(updated, l.records)
	updated = append(updated, rec)

	b, err := json.Marshal(updated)
	if err != nil {
		return rec, errEncodeHistory.Wrap(err)
	}

	err = l.kv.Put(Key, b)
	if err != nil {
		return rec, errPersistHistory.Wrap(err)
	}

	l.records = updated

	l.logger.Info(
		"session recorded",
		slog.String("id", rec.ID),
		slog.Int("duration", rec.ActualDurationMinutes),
		slog.Int("planned", rec.PlannedDurationMinutes),
		slog.Bool("completed", rec.Completed),
	)

	return rec, nil
}

// Len returns the number of recorded sessions.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}

// Records returns the history in insertion order.
func (l *Log) Records() []models.SessionRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return cloneRecords(l.records)
}

// TotalFocusMinutes sums the actual duration of every session.
func (l *Log) TotalFocusMinutes() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var total int

	for i := range l.records {
		total += l.records[i].ActualDurationMinutes
	}

	return total
}

// CompletionRate is the percentage of sessions that ran to the end, rounded
// to the nearest integer. It is 0 for an empty history.
func (l *Log) CompletionRate() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.records) == 0 {
		return 0
	}

	var completed int

	for i := range l.records {
		if l.records[i].Completed {
			completed++
		}
	}

	return timeutil.Round(float64(completed) / float64(len(l.records)) * 100)
}

// Recent returns up to n of the latest sessions, most recent first.
func (l *Log) Recent(n int) []models.SessionRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 {
		return []models.SessionRecord{}
	}

	n = min(n, len(l.records))

	recent := cloneRecords(l.records[len(l.records)-n:])
	slices.Reverse(recent)

	return recent
}

// Since returns the sessions created at or after t, in insertion order.
func (l *Log) Since(t time.Time) []models.SessionRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var matched []models.SessionRecord

	for i := range l.records {
		created := l.records[i].CreatedAt()
		if created.IsZero() || created.Before(t) {
			continue
		}

		matched = append(matched, l.records[i])
	}

	return cloneRecords(matched)
}

func cloneRecords(records []models.SessionRecord) []models.SessionRecord {
	out := make([]models.SessionRecord, len(records))

	for i := range records {
		out[i] = records[i]
		out[i].AppsUsed = slices.Clone(records[i].AppsUsed)
	}

	return out
}
