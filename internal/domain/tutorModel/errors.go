package tutorModel

import "errors"

// Sentinel errors so callers can tell "degrade gracefully" apart from
// "propagate" at component boundaries.
var (
	ErrEmptyContent = errors.New("no text content extracted from source")
	ErrNotFound     = errors.New("document not found")
	ErrInvalidURL   = errors.New("invalid YouTube URL")
)
