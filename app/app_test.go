package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/locktfin/internal/catalog"
	"github.com/ayoisaiah/locktfin/internal/config"
	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/pathutil"
	"github.com/ayoisaiah/locktfin/internal/session"
	"github.com/ayoisaiah/locktfin/internal/sessionlog"
	"github.com/ayoisaiah/locktfin/store"
)

func withXDG(t *testing.T) *pathutil.Paths {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("LOCKTFIN_ENV", "")

	xdg.Reload()

	t.Cleanup(xdg.Reload)

	logger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(logger) })

	paths, err := pathutil.Resolve()
	require.NoError(t, err)

	return paths
}

func seed(t *testing.T, dbFile string, records ...models.SessionRecord) {
	t.Helper()

	db, err := store.NewClient(dbFile)
	require.NoError(t, err)

	defer db.Close()

	history := sessionlog.New(db, nil)

	for _, rec := range records {
		_, err = history.Append(rec)
		require.NoError(t, err)
	}
}

func record(created time.Time, duration, planned int, completed bool) models.SessionRecord {
	return models.SessionRecord{
		ID:                     strconv.FormatInt(created.UnixMilli(), 10),
		Date:                   created.Format("1/2/2006"),
		AppsUsed:               []string{"Safari"},
		ActualDurationMinutes:  duration,
		PlannedDurationMinutes: planned,
		Completed:              completed,
	}
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	old := os.Stdout
	os.Stdout = w

	runErr := fn()

	require.NoError(t, w.Close())

	os.Stdout = old

	b, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(b), runErr
}

func TestStatsJSON(t *testing.T) {
	paths := withXDG(t)

	now := time.Now()

	seed(
		t,
		paths.DBFile,
		record(now.Add(-3*time.Hour), 30, 30, true),
		record(now.Add(-2*time.Hour), 20, 60, false),
		record(now.Add(-1*time.Hour), 60, 60, true),
	)

	out, err := captureStdout(t, func() error {
		return Get().Run([]string{"locktfin", "stats", "--json", "--recent", "2"})
	})
	require.NoError(t, err)

	var got struct {
		Recent            []models.SessionRecord `json:"recent"`
		Sessions          int                    `json:"sessions"`
		TotalFocusMinutes int                    `json:"total_focus_minutes"`
		CompletionRate    int                    `json:"completion_rate"`
	}

	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, 3, got.Sessions)
	assert.Equal(t, 110, got.TotalFocusMinutes)
	assert.Equal(t, 67, got.CompletionRate)
	require.Len(t, got.Recent, 2)
	assert.Equal(t, 60, got.Recent[0].ActualDurationMinutes)

	// the first run writes the default config
	_, err = os.Stat(paths.ConfigFile)
	assert.NoError(t, err)
}

func TestHistorySince(t *testing.T) {
	paths := withXDG(t)

	now := time.Now()

	seed(
		t,
		paths.DBFile,
		record(now.AddDate(0, 0, -10), 25, 25, true),
		record(now.Add(-time.Minute), 15, 30, false),
	)

	out, err := captureStdout(t, func() error {
		return Get().Run([]string{"locktfin", "history", "--since", "yesterday", "--json"})
	})
	require.NoError(t, err)

	var got []models.SessionRecord

	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, 15, got[0].ActualDurationMinutes)
	assert.False(t, got[0].Completed)
}

func TestStatusWithoutSession(t *testing.T) {
	withXDG(t)

	out, err := captureStdout(t, func() error {
		return Get().Run([]string{"locktfin", "status"})
	})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSessionConfigFromFlags(t *testing.T) {
	cfg := &config.Config{
		Session: config.SessionConfig{Duration: 60},
		CLI: config.CLIConfig{
			Apps:        []string{"safari", "/Applications/Obsidian.app", "Safari"},
			Duration:    25,
			DurationSet: true,
		},
	}

	got, err := sessionConfig(cfg, catalog.New(catalog.Defaults))
	require.NoError(t, err)

	assert.Equal(t, 25, got.PlannedDurationMinutes)
	assert.Equal(t, []string{"Safari", "Obsidian"}, got.Names())
}

func TestSessionConfigUnknownApp(t *testing.T) {
	cfg := &config.Config{
		Session: config.SessionConfig{Duration: 60},
		CLI:     config.CLIConfig{Apps: []string{"Safari", "Photoshop"}},
	}

	_, err := sessionConfig(cfg, catalog.New(catalog.Defaults))

	assert.ErrorIs(t, err, errUnknownApps)
	assert.ErrorContains(t, err, "Photoshop")
}

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		err  error
		in   string
		want int
	}{
		{in: "45", want: 45},
		{in: " 1 ", want: 1},
		{in: "480", want: 480},
		{in: "0", err: session.ErrInvalidDuration},
		{in: "481", err: session.ErrInvalidDuration},
		{in: "ten", err: errInvalidMinutes},
	}

	for _, tc := range cases {
		got, err := parseMinutes(tc.in)

		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, tc.in)
			continue
		}

		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestDurationOptions(t *testing.T) {
	opts := durationOptions([]int{15, 30, 60, 90}, 60)

	values := make([]int, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}

	assert.Equal(t, []int{15, 30, 60, 90, customDuration}, values)
	assert.Equal(t, "1h 0m", opts[2].Key)

	opts = durationOptions([]int{15, 30}, 45)

	assert.Equal(t, 45, opts[0].Value)
	assert.Len(t, opts, 4)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}
