package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger writes one structured line per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			status := responseStatus(c, err)

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			}

			ctx := c.Request().Context()
			switch {
			case status >= 500:
				logger.ErrorContext(ctx, "request failed", append(attrs, slog.Any("error", err))...)
			case status >= 400:
				logger.WarnContext(ctx, "request rejected", attrs...)
			default:
				logger.InfoContext(ctx, "request handled", attrs...)
			}

			return err
		}
	}
}

// responseStatus reports the status the client will see. When the handler
// returned an error, echo has not written the response yet.
func responseStatus(c echo.Context, err error) int {
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he.Code
		}
		if !c.Response().Committed {
			return http.StatusInternalServerError
		}
	}
	return c.Response().Status
}
