// Package timeutil provides utility functions for presenting and parsing
// times and durations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dateparser "github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/locktfin/internal/apperr"
)

const minutesInAnHour = 60

var errParseDate = &apperr.Error{
	Message: "unable to understand the date %q",
}

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatMinutes renders a minutes value as "45m" or "1h 5m".
func FormatMinutes(val int) string {
	if val < minutesInAnHour {
		return fmt.Sprintf("%dm", val)
	}

	hrs, mins := MinsToHoursAndMins(val)

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// FromStr parses absolute ("2024-03-01") and relative ("3 days ago") dates
// against now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)

	switch strings.ToLower(s) {
	case "today":
		return RoundToStart(now), nil
	case "yesterday":
		return RoundToStart(now.AddDate(0, 0, -1)), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	dt, err := dateparser.Parse(cfg, s)
	if err != nil || dt.Time.IsZero() {
		return time.Time{}, errParseDate.Fmt(s)
	}

	return dt.Time, nil
}
