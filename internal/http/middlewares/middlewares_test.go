package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"task-manager.com/task-manager/internal/telemetry"
)

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, time.September, 10, 9, 0, 0, 0, time.UTC)

	e := echo.New()
	e.Use(RateLimiterWithConfig(RateLimiterConfig{
		Limit:  2,
		Window: time.Minute,
		Skip:   func(c echo.Context) bool { return c.Path() == "/health" },
		now:    func() time.Time { return now },
	}))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(e, "/").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, "/").Code)
	assert.Equal(t, http.StatusOK, serve(e, "/health").Code)

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, serve(e, "/").Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/missing", func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) })

	serve(e, "/ok")
	assert.Contains(t, buf.String(), `"msg":"request handled"`)
	assert.Contains(t, buf.String(), `"status":200`)

	buf.Reset()
	serve(e, "/missing")
	assert.Contains(t, buf.String(), `"msg":"request rejected"`)
	assert.Contains(t, buf.String(), `"status":404`)
}

func TestMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := telemetry.NewMetrics(mp.Meter("test"), func(context.Context) (int64, error) { return 0, nil })
	require.NoError(t, err)

	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/tasks/list", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	serve(e, "/tasks/list")
	serve(e, "/tasks/list")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if sum, ok := md.Data.(metricdata.Sum[int64]); ok && md.Name == "http_requests_total" {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(2), total)
}
