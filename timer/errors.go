package timer

import "github.com/ayoisaiah/locktfin/internal/apperr"

var (
	errWriteStatus = &apperr.Error{
		Message: "unable to write status file",
	}

	errReadStatus = &apperr.Error{
		Message: "unable to read status file",
	}
)
