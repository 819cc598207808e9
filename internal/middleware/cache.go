// Package middleware holds the Echo middleware for the API surface:
// a Redis-backed response cache and a fixed-window rate limiter.  Both
// are optional; with no Redis client they collapse into pass-throughs.
package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/carmate/carmate/internal/config"
)

// cacheEntry is the stored shape of one cached response.
type cacheEntry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter tees the response body into a buffer while forwarding it
// to the client, so a successful GET can be stored after the handler ran.
// Bodies above the limit are forwarded but not stored.
type captureWriter struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	limit    int
	overflow bool
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if !cw.overflow {
		if cw.buf.Len()+len(b) > cw.limit {
			cw.overflow = true
		} else {
			cw.buf.Write(b)
		}
	}
	return cw.ResponseWriter.Write(b)
}

// NewResponseCache caches GET responses in Redis.  Cache keys embed a
// generation counter that every successful mutating request bumps, so a
// client that re-fetches its collections right after a write always sees
// the post-write state; entries from older generations simply expire.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	genKey := cfg.Prefix + ":gen"

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			if c.Request().Method != http.MethodGet {
				err := next(c)
				if err == nil && c.Response().Status < 400 {
					// Invalidate: move every GET key to a new generation.
					_ = rdb.Incr(ctx, genKey).Err()
				}
				return err
			}

			gen, _ := rdb.Get(ctx, genKey).Result()
			key := cacheKey(cfg.Prefix, gen, c.Request().URL.Path, c.Request().URL.RawQuery)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var ent cacheEntry
				if json.Unmarshal(raw, &ent) == nil {
					c.Response().Header().Set(echo.HeaderContentType, ent.ContentType)
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(ent.Status)
					_, werr := c.Response().Write(ent.Body)
					return werr
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")
			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && !cw.overflow {
				ent := cacheEntry{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				}
				if raw, err := json.Marshal(ent); err == nil {
					_ = rdb.Set(ctx, key, raw, cfg.TTL).Err()
				}
			}
			return nil
		}
	}
}

// cacheKey builds a stable key from the generation, path and query.  The
// variable part is hashed so keys stay short regardless of query length.
func cacheKey(prefix, gen, path, query string) string {
	sum := sha1.Sum([]byte(path + "?" + query))
	return fmt.Sprintf("%s:g%s:%x", prefix, gen, sum)
}

// ttlSeconds rounds a duration up to whole seconds for Retry-After style
// headers.
func ttlSeconds(d time.Duration) int {
	s := int(d / time.Second)
	if d%time.Second != 0 {
		s++
	}
	if s < 1 {
		s = 1
	}
	return s
}
