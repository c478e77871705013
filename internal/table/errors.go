package table

import "errors"

var (
	// ErrMissingColumn indicates a named column is absent from the header.
	ErrMissingColumn = errors.New("missing column")

	// ErrBadCell indicates a cell that could not be parsed as a number.
	ErrBadCell = errors.New("bad cell")

	// ErrInvalidJob indicates a job file with inconsistent settings.
	ErrInvalidJob = errors.New("invalid job")
)
