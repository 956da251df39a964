package rules

import "errors"

var (
	// ErrInvalidTable is returned when a rule table document is not a mapping.
	ErrInvalidTable = errors.New("invalid rule table")

	// ErrInvalidPattern is returned when a rule value is neither a string nor a list.
	ErrInvalidPattern = errors.New("invalid rule pattern")
)
