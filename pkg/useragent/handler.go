package useragent

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/uadetect/pkg/logger"
)

// SummaryHandler responds with the JSON Summary of the request's agent.
// The "ua" query parameter classifies an arbitrary agent string instead of
// the caller's own User-Agent. An Agent stored by Middleware is reused.
func SummaryHandler(d *Detector, log *slog.Logger) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		a := FromContext(r.Context())
		if ua := r.URL.Query().Get("ua"); ua != "" {
			a = d.Parse(ua, WithAcceptLanguage(r.Header.Get("Accept-Language")))
		} else if a == nil {
			a = d.FromRequest(r)
		}

		start := time.Now()
		s := a.Summarize()
		log.DebugContext(r.Context(), "classified",
			logger.UserAgent(s.UserAgent),
			slog.String("device_type", s.DeviceType),
			logger.Duration(time.Since(start)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(s); err != nil {
			log.ErrorContext(r.Context(), "failed to encode summary", logger.Error(err))
		}
	})
}
