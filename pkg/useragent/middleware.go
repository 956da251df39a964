package useragent

import "net/http"

type middlewareOptions struct {
	metrics *Metrics
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareOptions)

// WithMetrics records every classified request on m.
func WithMetrics(m *Metrics) MiddlewareOption {
	return func(o *middlewareOptions) {
		o.metrics = m
	}
}

// Middleware binds each request to an Agent and stores it in the request
// context. Handlers retrieve it with FromContext.
func Middleware(d *Detector, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	var o middlewareOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a := d.FromRequest(r)
			o.metrics.Observe(a)
			next.ServeHTTP(w, r.WithContext(WithAgent(r.Context(), a)))
		})
	}
}
