package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/carmate/carmate/internal/config"
)

// NewRateLimiter limits each client IP to cfg.Limit requests per
// cfg.Window using a fixed window counter in Redis (INCR + EXPIRE).  The
// limiter fails open: if Redis errors mid-request the request proceeds,
// since dropping traffic over a cache outage would be worse than briefly
// running unthrottled.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	window := int64(cfg.Window / time.Second)
	if window < 1 {
		window = 1
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			slot := time.Now().Unix() / window
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), slot)

			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if n > int64(cfg.Limit) {
				c.Response().Header().Set("Retry-After", strconv.Itoa(ttlSeconds(cfg.Window)))
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
