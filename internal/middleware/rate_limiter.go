package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultRate is the number of requests per second a client may send to a
// rate limited route, with a burst of the same size.
const DefaultRate = 10

// RateLimiter creates a rate limiter middleware allowing perSecond requests per
// second per client. Clients are identified by their client id when present
// and by their real IP address otherwise.
func RateLimiter(perSecond float64) echo.MiddlewareFunc {
	if perSecond <= 0 {
		perSecond = DefaultRate
	}
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStore(rate.Limit(perSecond)),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if id, ok := c.Get(ClientIDKey).(string); ok && id != "" {
				return id, nil
			}
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
