// Package models defines the values shared between the session controller,
// the session log and the user interface
package models

import (
	"encoding/json"
	"slices"
	"strconv"
	"time"
)

// Status is the state of the session controller.
type Status int

const (
	Idle Status = iota
	Active
)

func (s Status) String() string {
	if s == Active {
		return "active"
	}

	return "idle"
}

// Application is a unit of selection. Path identifies it.
type Application struct {
	Name string `json:"name"           mapstructure:"name"`
	Path string `json:"path"           mapstructure:"path"`
	Icon string `json:"icon,omitempty" mapstructure:"icon"`
}

// SessionConfig is what the user asks for when starting a session.
type SessionConfig struct {
	SelectedApps           []Application `json:"selected_apps"`
	PlannedDurationMinutes int           `json:"planned_duration_minutes"`
}

// Names returns the display names of the selected applications in order.
func (c SessionConfig) Names() []string {
	names := make([]string, len(c.SelectedApps))

	for i := range c.SelectedApps {
		names[i] = c.SelectedApps[i].Name
	}

	return names
}

// Clone returns a copy of the config that shares no memory with c.
func (c SessionConfig) Clone() SessionConfig {
	return SessionConfig{
		SelectedApps:           slices.Clone(c.SelectedApps),
		PlannedDurationMinutes: c.PlannedDurationMinutes,
	}
}

// SessionState is a snapshot of the controller state.
type SessionState struct {
	StartedAt        time.Time     `json:"started_at"`
	Config           SessionConfig `json:"config"`
	Status           Status        `json:"status"`
	RemainingMinutes int           `json:"remaining_minutes"`
}

// ElapsedMinutes is the number of whole ticks applied to the active session.
func (s SessionState) ElapsedMinutes() int {
	if s.Status != Active {
		return 0
	}

	return s.Config.PlannedDurationMinutes - s.RemainingMinutes
}

// SessionRecord is the immutable outcome of one session.
type SessionRecord struct {
	ID                     string   `json:"id"`
	Date                   string   `json:"date"`
	AppsUsed               []string `json:"appsUsed"`
	ActualDurationMinutes  int      `json:"duration"`
	PlannedDurationMinutes int      `json:"plannedDuration"`
	Completed              bool     `json:"completed"`
}

// NewRecord builds the record for a session that ended at the given time.
func NewRecord(
	endedAt time.Time,
	dateLayout string,
	cfg SessionConfig,
	actual int,
	completed bool,
) SessionRecord {
	return SessionRecord{
		ID:                     strconv.FormatInt(endedAt.UnixMilli(), 10),
		Date:                   endedAt.Format(dateLayout),
		ActualDurationMinutes:  actual,
		PlannedDurationMinutes: cfg.PlannedDurationMinutes,
		AppsUsed:               cfg.Names(),
		Completed:              completed,
	}
}

// CreatedAt recovers the creation time encoded in the record ID. The zero
// time is returned for IDs that are not millisecond timestamps.
func (r SessionRecord) CreatedAt() time.Time {
	ms, err := strconv.ParseInt(r.ID, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.UnixMilli(ms)
}

// UnmarshalJSON also accepts the long field names actualDurationMinutes and
// plannedDurationMinutes.
func (r *SessionRecord) UnmarshalJSON(b []byte) error {
	var aux struct {
		Duration               *int     `json:"duration"`
		ActualDurationMinutes  *int     `json:"actualDurationMinutes"`
		PlannedDuration        *int     `json:"plannedDuration"`
		PlannedDurationMinutes *int     `json:"plannedDurationMinutes"`
		ID                     string   `json:"id"`
		Date                   string   `json:"date"`
		AppsUsed               []string `json:"appsUsed"`
		Completed              bool     `json:"completed"`
	}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*r = SessionRecord{
		ID:        aux.ID,
		Date:      aux.Date,
		AppsUsed:  aux.AppsUsed,
		Completed: aux.Completed,
	}

	if aux.Duration != nil {
		r.ActualDurationMinutes = *aux.Duration
	} else if aux.ActualDurationMinutes != nil {
		r.ActualDurationMinutes = *aux.ActualDurationMinutes
	}

	if aux.PlannedDuration != nil {
		r.PlannedDurationMinutes = *aux.PlannedDuration
	} else if aux.PlannedDurationMinutes != nil {
		r.PlannedDurationMinutes = *aux.PlannedDurationMinutes
	}

	return nil
}
