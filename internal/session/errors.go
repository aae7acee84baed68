package session

import "github.com/ayoisaiah/locktfin/internal/apperr"

var (
	ErrNoApps = &apperr.Error{
		Message: "select at least one application to start a focus session",
	}

	ErrEmptyAppName = &apperr.Error{
		Message: "application at %s has no name",
	}

	ErrDuplicateApp = &apperr.Error{
		Message: "application %s is selected more than once",
	}

	ErrInvalidDuration = &apperr.Error{
		Message: "session duration must be between %d and %d minutes, got %d",
	}

	ErrSessionActive = &apperr.Error{
		Message: "a focus session is already in progress",
	}
)
