package useragent_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/uadetect/pkg/logger"
	"github.com/dmitrymomot/uadetect/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryHandler(t *testing.T) {
	d := newDetector(t)
	h := useragent.SummaryHandler(d, nil)

	t.Run("request user agent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/classify", nil)
		req.Header.Set("User-Agent", uaIPad)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var s useragent.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
		assert.Equal(t, useragent.DeviceTypeTablet, s.DeviceType)
		assert.Equal(t, "iPad", s.Device)
	})

	t.Run("ua query parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/classify?ua="+url.QueryEscape(uaGooglebot), nil)
		req.Header.Set("User-Agent", uaIPhone)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		var s useragent.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
		assert.Equal(t, useragent.DeviceTypeRobot, s.DeviceType)
		assert.Equal(t, "Googlebot", s.Robot)
	})

	t.Run("agent from middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/classify", nil)
		req.Header.Set("User-Agent", uaPixel)
		rec := httptest.NewRecorder()
		useragent.Middleware(d)(h).ServeHTTP(rec, req)

		var s useragent.Summary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
		assert.Equal(t, useragent.DeviceTypePhone, s.DeviceType)
		assert.Equal(t, map[string]string{"AndroidOS": "10", "Chrome": "91.0.4472.120"}, s.Versions)
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/classify", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestSummaryHandlerClassifiesOnce(t *testing.T) {
	c := &stubCrawler{signature: "robot"}
	d := newDetector(t, useragent.WithCrawlerDetector(c))

	d.Parse("robot").Summarize()
	perSummary := c.calls
	c.calls = 0

	m := useragent.NewMetrics(prometheus.NewRegistry())
	h := useragent.Middleware(d, useragent.WithMetrics(m))(useragent.SummaryHandler(d, nil))

	req := httptest.NewRequest(http.MethodGet, "/classify", nil)
	req.Header.Set("User-Agent", "robot")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, perSummary, c.calls)
}

func TestSummaryHandlerLogsDuration(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatJSON), logger.WithLevelName("debug"))
	h := useragent.SummaryHandler(newDetector(t), log)

	req := httptest.NewRequest(http.MethodGet, "/classify", nil)
	req.Header.Set("User-Agent", uaIPhone)
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "classified", entry["msg"])
	assert.Equal(t, "phone", entry["device_type"])
	assert.Contains(t, entry, "duration")
}
