// Package requestid correlates the log records of one classification request.
//
// Middleware reads X-Request-ID from the request, replacing missing or
// malformed values with a fresh UUID, stores the ID in the context and echoes
// it back in the response header. LoggerExtractor plugs into pkg/logger so
// every record logged with the request context carries a request_id attribute:
//
//	log := logger.New(logger.WithExtractor(requestid.LoggerExtractor()))
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
