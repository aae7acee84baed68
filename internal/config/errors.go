package config

import "github.com/ayoisaiah/locktfin/internal/apperr"

var (
	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %d and %d minutes, got %d",
	}

	errNoPresets = &apperr.Error{
		Message: "at least one duration preset is required",
	}

	errInvalidApp = &apperr.Error{
		Message: "app #%d must have both a name and a path",
	}

	errDuplicateApp = &apperr.Error{
		Message: "app path %s is listed more than once",
	}

	errEmptyExitKey = &apperr.Error{
		Message: "the exit key cannot be empty",
	}

	errEmptyDateFormat = &apperr.Error{
		Message: "the date format cannot be empty",
	}
)
