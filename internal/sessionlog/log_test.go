package sessionlog

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/store"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var base = time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)

func record(i, duration, planned int, completed bool) models.SessionRecord {
	created := base.Add(time.Duration(i) * time.Hour)

	return models.SessionRecord{
		ID:                     strconv.FormatInt(created.UnixMilli(), 10),
		Date:                   created.Format("1/2/2006"),
		AppsUsed:               []string{"Safari"},
		ActualDurationMinutes:  duration,
		PlannedDurationMinutes: planned,
		Completed:              completed,
	}
}

func newLog(t *testing.T, records ...models.SessionRecord) *Log {
	t.Helper()

	l := New(store.NewMemory(), discard)

	for _, r := range records {
		_, err := l.Append(r)
		require.NoError(t, err)
	}

	return l
}

func TestStatistics(t *testing.T) {
	l := newLog(t,
		record(0, 30, 30, true),
		record(1, 20, 45, false),
		record(2, 60, 60, true),
	)

	assert.Equal(t, 110, l.TotalFocusMinutes())
	assert.Equal(t, 67, l.CompletionRate())
}

func TestStatisticsEmptyHistory(t *testing.T) {
	l := newLog(t)

	assert.Equal(t, 0, l.TotalFocusMinutes())
	assert.Equal(t, 0, l.CompletionRate())
	assert.Empty(t, l.Recent(5))
}

func TestCompletionRateRounding(t *testing.T) {
	cases := []struct {
		name      string
		completed []bool
		want      int
	}{
		{"all completed", []bool{true, true}, 100},
		{"none completed", []bool{false, false, false}, 0},
		{"one of three", []bool{true, false, false}, 33},
		{"half", []bool{true, false}, 50},
		{"five of eight", []bool{true, true, true, true, true, false, false, false}, 63},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := newLog(t)

			for i, c := range tc.completed {
				_, err := l.Append(record(i, 10, 10, c))
				require.NoError(t, err)
			}

			assert.Equal(t, tc.want, l.CompletionRate())
		})
	}
}

func TestRecent(t *testing.T) {
	records := []models.SessionRecord{
		record(0, 10, 10, true),
		record(1, 20, 20, true),
		record(2, 5, 30, false),
	}

	l := newLog(t, records...)

	cases := []struct {
		name string
		n    int
		want []models.SessionRecord
	}{
		{"fewer than history", 2, []models.SessionRecord{records[2], records[1]}},
		{"exactly history", 3, []models.SessionRecord{records[2], records[1], records[0]}},
		{"more than history", 5, []models.SessionRecord{records[2], records[1], records[0]}},
		{"zero", 0, []models.SessionRecord{}},
		{"negative", -1, []models.SessionRecord{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, l.Recent(tc.n)); diff != "" {
				t.Errorf("Recent(%d) mismatch (-want +got):\n%s", tc.n, diff)
			}
		})
	}
}

func TestRecentDoesNotExposeHistory(t *testing.T) {
	l := newLog(t, record(0, 10, 10, true))

	recent := l.Recent(1)
	recent[0].AppsUsed[0] = "Chrome"
	recent[0].Completed = false

	assert.Equal(t, "Safari", l.Records()[0].AppsUsed[0])
	assert.Equal(t, 100, l.CompletionRate())
}

func TestAppendIsWriteThrough(t *testing.T) {
	kv := store.NewMemory()
	l := New(kv, discard)

	rec := record(0, 25, 25, true)

	got, err := l.Append(rec)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
	assert.Equal(t, 1, kv.Puts())

	reloaded := New(kv, discard)
	reloaded.Load()

	if diff := cmp.Diff(l.Records(), reloaded.Records()); diff != "" {
		t.Errorf("persisted history mismatch (-memory +store):\n%s", diff)
	}
}

func TestAppendPersistFailureKeepsHistory(t *testing.T) {
	kv := store.NewMemory()
	l := New(kv, discard)

	_, err := l.Append(record(0, 25, 25, true))
	require.NoError(t, err)

	kv.FailPut = errors.New("disk full")

	_, err = l.Append(record(1, 5, 25, false))

	require.ErrorIs(t, err, errPersistHistory)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 100, l.CompletionRate())
}

func TestLoad(t *testing.T) {
	cases := []struct {
		name   string
		stored string
		want   int
	}{
		{"missing key", "", 0},
		{"malformed json", "{not json", 0},
		{"wrong shape", `{"id":"1"}`, 0},
		{"empty array", "[]", 0},
		{
			"long field names",
			`[{"id":"1700000000000","date":"11/14/2023","duration":30,"plannedDuration":30,"appsUsed":["Safari","Notion"],"completed":true},
			  {"id":"1700000600000","date":"11/14/2023","duration":4,"plannedDuration":15,"appsUsed":[],"completed":false}]`,
			2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := store.NewMemory()

			if tc.stored != "" {
				require.NoError(t, kv.Put(Key, []byte(tc.stored)))
			}

			l := New(kv, discard)
			l.Load()

			assert.Equal(t, tc.want, l.Len())
		})
	}
}

type failingKV struct {
	store.KV
}

func (failingKV) Get(string) ([]byte, error) {
	return nil, errors.New("read error")
}

func TestLoadReadFailure(t *testing.T) {
	l := New(failingKV{}, discard)

	assert.NotPanics(t, l.Load)
	assert.Equal(t, 0, l.Len())
}

func TestSince(t *testing.T) {
	records := []models.SessionRecord{
		record(0, 10, 10, true),
		record(5, 20, 20, true),
		record(10, 30, 30, true),
	}

	l := newLog(t, records...)

	got := l.Since(base.Add(5 * time.Hour))

	if diff := cmp.Diff(records[1:], got); diff != "" {
		t.Errorf("Since() mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, l.Since(base.Add(24*time.Hour)))
}

func TestBoltRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locktfin.db")

	client, err := store.NewClient(path)
	require.NoError(t, err)

	l := New(client, discard)
	l.Load()

	_, err = l.Append(record(0, 30, 30, true))
	require.NoError(t, err)

	_, err = l.Append(record(1, 12, 60, false))
	require.NoError(t, err)

	require.NoError(t, client.Close())

	client, err = store.NewClient(path)
	require.NoError(t, err)

	defer client.Close()

	reloaded := New(client, discard)
	reloaded.Load()

	assert.Equal(t, 2, reloaded.Len())
	assert.Equal(t, 42, reloaded.TotalFocusMinutes())
	assert.Equal(t, 50, reloaded.CompletionRate())
}
