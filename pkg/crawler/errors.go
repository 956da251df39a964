package crawler

import "errors"

var (
	ErrInvalidSignature = errors.New("invalid crawler signature pattern")
	ErrInvalidExclusion = errors.New("invalid crawler exclusion pattern")
)
