// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers with consistent keys for the detector packages.
//
//	log := logger.New(
//	    logger.WithLevelName("debug"),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(logger.Component("uadetect")),
//	)
//	log.Warn("invalid pattern", logger.Pattern(expr), logger.Error(err))
//
// WithContextValue injects request scoped values (for example a request id
// stored by middleware) into every record logged with that context.
//
// Error and UserAgent return an empty slog.Attr for zero input, so they can be
// passed unconditionally.
package logger
