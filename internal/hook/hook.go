// Package hook runs the user's session command after a focus session ends
package hook

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/locktfin/internal/apperr"
	"github.com/ayoisaiah/locktfin/internal/models"
)

// Timeout bounds how long a session command may run.
const Timeout = 30 * time.Second

var errParseCmd = &apperr.Error{
	Message: "unable to parse session command",
}

// Env returns the variables describing rec that are passed to the session
// command.
func Env(rec models.SessionRecord) []string {
	return []string{
		"LOCKTFIN_ID=" + rec.ID,
		"LOCKTFIN_COMPLETED=" + strconv.FormatBool(rec.Completed),
		"LOCKTFIN_DURATION=" + strconv.Itoa(rec.ActualDurationMinutes),
		"LOCKTFIN_PLANNED=" + strconv.Itoa(rec.PlannedDurationMinutes),
	}
}

// Run executes sessionCmd for rec. An empty command does nothing.
func Run(ctx context.Context, sessionCmd string, rec models.SessionRecord) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), Env(rec)...)

	return cmd.Run()
}
