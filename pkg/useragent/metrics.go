package useragent

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unknownLabel = "unknown"

// Metrics records classification outcomes.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	robotsTotal      *prometheus.CounterVec
	classifyDuration prometheus.Histogram
}

// NewMetrics creates and registers the collectors on reg, or on the default
// registerer when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "uadetect_requests_total", Help: "Total classified requests"},
			[]string{"device_type", "platform", "browser"},
		),
		robotsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "uadetect_robots_total", Help: "Total requests from crawlers"},
			[]string{"robot"},
		),
		classifyDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "uadetect_classify_duration_seconds",
				Help:    "Time spent classifying one request",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.requestsTotal,
		m.robotsTotal,
		m.classifyDuration,
	)

	return m
}

// Handler exposes reg, or the default gatherer when reg is nil.
func (m *Metrics) Handler(reg *prometheus.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Observe summarizes a and records the result. The summary is cached on a,
// so handlers calling Summarize afterwards reuse it. A nil receiver is a no-op.
//
// Robot labels are bounded: named crawler signatures are lower-cased and
// everything else is counted as GenericRobot.
func (m *Metrics) Observe(a *Agent) {
	if m == nil || a == nil {
		return
	}

	start := time.Now()
	s := a.Summarize()
	m.classifyDuration.Observe(time.Since(start).Seconds())

	m.requestsTotal.WithLabelValues(s.DeviceType, labelOrUnknown(s.Platform), labelOrUnknown(s.Browser)).Inc()
	if s.Robot != "" {
		m.robotsTotal.WithLabelValues(a.robotLabel()).Inc()
	}
}

func labelOrUnknown(v string) string {
	if v == "" {
		return unknownLabel
	}
	return v
}
