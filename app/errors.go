package app

import "github.com/ayoisaiah/locktfin/internal/apperr"

var (
	errUnknownApps = &apperr.Error{
		Message: "unknown application(s): %s. Run 'locktfin apps' to list the available ones or pass a path",
	}

	errInvalidMinutes = &apperr.Error{
		Message: "%q is not a number of minutes",
	}
)
