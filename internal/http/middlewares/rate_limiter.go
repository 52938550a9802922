package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type RateLimiterConfig struct {
	Limit  int
	Window time.Duration

	// Skip bypasses the limiter, e.g. for health checks.
	Skip func(c echo.Context) bool

	now func() time.Time
}

// RateLimiterWithConfig allows Limit requests per client IP in each fixed
// Window.
func RateLimiterWithConfig(cfg RateLimiterConfig) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	if cfg.now == nil {
		cfg.now = time.Now
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skip != nil && cfg.Skip(c) {
				return next(c)
			}

			now := cfg.now()
			key := c.RealIP()

			mu.Lock()
			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > cfg.Window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= cfg.Limit {
				mu.Unlock()
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}
