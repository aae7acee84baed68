// Package stats summarises the session history
package stats

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/timeutil"
	"github.com/ayoisaiah/locktfin/internal/ui"
)

// DefaultRecent is how many sessions the summary lists.
const DefaultRecent = 5

// Source is the history statistics are computed from.
type Source interface {
	Len() int
	TotalFocusMinutes() int
	CompletionRate() int
	Recent(n int) []models.SessionRecord
}

// Stats is a summary of the session history.
type Stats struct {
	Recent            []models.SessionRecord `json:"recent"`
	Sessions          int                    `json:"sessions"`
	TotalFocusMinutes int                    `json:"total_focus_minutes"`
	CompletionRate    int                    `json:"completion_rate"`
}

// Compute summarises src, listing up to recent sessions.
func Compute(src Source, recent int) *Stats {
	return &Stats{
		Sessions:          src.Len(),
		TotalFocusMinutes: src.TotalFocusMinutes(),
		CompletionRate:    src.CompletionRate(),
		Recent:            src.Recent(recent),
	}
}

// ToJSON encodes the stats.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// Render prints the totals followed by the recent sessions.
func (s *Stats) Render(w io.Writer) error {
	_, err := fmt.Fprintf(
		w,
		"%s %s\n%s %s\n%s %s\n\n",
		ui.Highlight("Sessions:        "),
		ui.Magenta(s.Sessions),
		ui.Highlight("Total focus:     "),
		ui.Green(timeutil.FormatMinutes(s.TotalFocusMinutes)),
		ui.Highlight("Completion rate: "),
		ui.Yellow(fmt.Sprintf("%d%%", s.CompletionRate)),
	)
	if err != nil {
		return err
	}

	if len(s.Recent) == 0 {
		_, err = fmt.Fprintln(w, "No sessions recorded yet")
		return err
	}

	_, err = fmt.Fprintln(w, ui.Highlight("Recent sessions"))
	if err != nil {
		return err
	}

	return List(w, s.Recent)
}
