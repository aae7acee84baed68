// Package report prints user-facing messages to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/timeutil"
)

// SessionEnded summarises a finished session.
func SessionEnded(rec models.SessionRecord) {
	if rec.Completed {
		pterm.Success.Printfln(
			"Session complete: %s of focus",
			timeutil.FormatMinutes(rec.ActualDurationMinutes),
		)

		return
	}

	pterm.Warning.Printfln(
		"Session ended early: %s of %s",
		timeutil.FormatMinutes(rec.ActualDurationMinutes),
		timeutil.FormatMinutes(rec.PlannedDurationMinutes),
	)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
