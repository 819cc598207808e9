package config

// Redis backs the optional response cache and rate limiter.  Both degrade
// gracefully when no server is reachable: NewRedisClient returns nil and
// the middleware constructors turn into pass-throughs.

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from the environment:
//
//	REDIS_ADDR     – host:port, default "localhost:6379"
//	REDIS_PASSWORD – optional password
//	REDIS_DB       – database number, default 0
//
// The server is pinged with a short timeout; on failure nil is returned
// and callers should run without caching or rate limiting.
func NewRedisClient() *redis.Client {
	addr := getenv("REDIS_ADDR", "localhost:6379")
	db := 0
	if s := getenv("REDIS_DB", ""); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			db = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getenv("REDIS_PASSWORD", ""),
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
