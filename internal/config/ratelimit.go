package config

import "time"

// RateLimitConfig defines settings for the fixed-window rate limiter.
// Limit requests are allowed per client IP per Window; beyond that the
// API answers 429 until the window rolls over.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
	Prefix  string
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig.  The limiter is off by default; it only engages when
// RATELIMIT_ENABLED is set and a Redis client is available.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled: parseBool(getenv("RATELIMIT_ENABLED", "false")),
		Limit:   atoi(getenv("RATELIMIT_LIMIT", "120")),
		Window:  parseDur(getenv("RATELIMIT_WINDOW", "1m")),
		Prefix:  getenv("RATELIMIT_PREFIX", "carmate:rl"),
	}
}
