package engine

import "errors"

// Errors returned by the engine. Each one aborts the whole call; no partial
// output is ever produced alongside them.
var (
	// ErrUnknownMethod indicates a method outside {linear, cosine, catmullrom}.
	ErrUnknownMethod = errors.New("unknown interpolation method")

	// ErrShape indicates x and y have different lengths.
	ErrShape = errors.New("control point shape mismatch")

	// ErrInvalidValue indicates a non-finite control point x or fill value.
	ErrInvalidValue = errors.New("invalid value")
)
