package useragent

import "errors"

var (
	// ErrUnsupportedOperation is returned by Agent.Query for query names that
	// do not start with "is".
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrLoadExtensions is returned when an extension rules file cannot be read.
	ErrLoadExtensions = errors.New("failed to load extension rules")

	// ErrInvalidExtensions is returned when extension rules cannot be decoded.
	ErrInvalidExtensions = errors.New("invalid extension rules")

	// ErrLoadConfig is returned when the detector configuration cannot be loaded.
	ErrLoadConfig = errors.New("failed to load detector config")

	// ErrCrawlerDetector is returned when the default crawler detector cannot be built.
	ErrCrawlerDetector = errors.New("failed to build crawler detector")
)
