package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"task-manager.com/task-manager/internal/telemetry"
)

// Metrics records request count and latency labelled by route template.
func Metrics(m *telemetry.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			attrs := metric.WithAttributes(
				attribute.String("http.method", c.Request().Method),
				attribute.String("http.route", c.Path()),
				attribute.Int("http.status_code", responseStatus(c, err)),
			)

			ctx := c.Request().Context()
			m.RequestCounter.Add(ctx, 1, attrs)
			m.RequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)

			return err
		}
	}
}
