package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carmate/carmate/internal/config"
)

// invoke runs a single GET request through mw wrapped around a handler
// that records whether it was reached.
func invoke(t *testing.T, mw echo.MiddlewareFunc, method string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})
	e := echo.New()
	req := httptest.NewRequest(method, "/api/cars", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, called
}

// Without a Redis client the cache must be a transparent pass-through:
// handlers run on every request and no cache headers are set.
func TestResponseCacheNilClientPassThrough(t *testing.T) {
	cfg := config.CacheConfig{Enabled: true, TTL: 30 * time.Second, Prefix: "t", MaxBodyBytes: 1 << 20}
	mw := NewResponseCache(cfg, nil)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec, called := invoke(t, mw, method)
		assert.True(t, called, "%s handler not reached", method)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("X-Cache"))
	}
}

func TestResponseCacheDisabledPassThrough(t *testing.T) {
	mw := NewResponseCache(config.CacheConfig{Enabled: false}, nil)
	rec, called := invoke(t, mw, http.MethodGet)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// The rate limiter degrades the same way: no Redis, no throttling.
func TestRateLimiterNilClientPassThrough(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Limit: 1, Window: time.Minute, Prefix: "t"}
	mw := NewRateLimiter(cfg, nil)

	for i := 0; i < 5; i++ {
		rec, called := invoke(t, mw, http.MethodGet)
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
