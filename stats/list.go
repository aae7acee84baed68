package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/ayoisaiah/locktfin/internal/models"
	"github.com/ayoisaiah/locktfin/internal/timeutil"
	"github.com/ayoisaiah/locktfin/internal/ui"
)

// List prints records as a table.
func List(w io.Writer, records []models.SessionRecord) error {
	data := make([][]string, 0, len(records)+1)

	data = append(data, []string{"DATE", "DURATION", "APPS", "STATUS"})

	for _, rec := range records {
		data = append(data, []string{
			rec.Date,
			timeutil.FormatMinutes(rec.ActualDurationMinutes) +
				" / " + timeutil.FormatMinutes(rec.PlannedDurationMinutes),
			appsSummary(rec.AppsUsed),
			ui.Outcome(rec.Completed),
		})
	}

	return ui.PrintTable(data, w)
}

func appsSummary(apps []string) string {
	const maxListed = 3

	if len(apps) <= maxListed {
		return strings.Join(apps, ", ")
	}

	return fmt.Sprintf(
		"%s +%d",
		strings.Join(apps[:maxListed], ", "),
		len(apps)-maxListed,
	)
}
