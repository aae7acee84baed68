package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/osutil"
	"github.com/ayoisaiah/locktfin/internal/timeutil"
)

// Status describes the running session for other processes.
type Status struct {
	EndTime          time.Time `json:"end_time"`
	Apps             []string  `json:"apps"`
	RemainingMinutes int       `json:"remaining_minutes"`
	PlannedMinutes   int       `json:"planned_minutes"`
}

// NewStatus derives a Status from an active session state.
func NewStatus(state models.SessionState, interval time.Duration) Status {
	return Status{
		EndTime:          endTime(state, interval),
		Apps:             state.Config.Names(),
		RemainingMinutes: state.RemainingMinutes,
		PlannedMinutes:   state.Config.PlannedDurationMinutes,
	}
}

// WriteStatus replaces the status file at path.
func WriteStatus(path string, s Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	err = os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	err = os.WriteFile(path, b, osutil.FilePermission)
	if err != nil {
		return errWriteStatus.Wrap(err)
	}

	return nil
}

// ReadStatus reads the status file at path. A missing file yields nil.
func ReadStatus(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, errReadStatus.Wrap(err)
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, errReadStatus.Wrap(err)
	}

	return &s, nil
}

// RemoveStatus deletes the status file, ignoring a missing one.
func RemoveStatus(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// Report prints the time left in the session. Nothing is printed once the
// end time has passed.
func (s *Status) Report(w io.Writer, now time.Time) error {
	left := s.EndTime.Sub(now)
	if left <= 0 {
		return nil
	}

	_, err := fmt.Fprintf(
		w,
		"[Focus %s]: %s left (%s)\n",
		timeutil.FormatMinutes(s.PlannedMinutes),
		formatRemaining(left),
		strings.Join(s.Apps, ", "),
	)

	return err
}

// endTime is when the last tick of the session is due.
func endTime(state models.SessionState, interval time.Duration) time.Time {
	return state.StartedAt.Add(
		time.Duration(state.Config.PlannedDurationMinutes) * interval,
	)
}

// formatRemaining renders d as "MM:SS", or "H:MM:SS" from one hour up.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int(d.Round(time.Second).Seconds())

	h, m, s := secs/3600, (secs%3600)/60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%02d:%02d", m, s)
}
