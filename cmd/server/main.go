package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/carmate/carmate/internal/config"
	"github.com/carmate/carmate/internal/handler"
	"github.com/carmate/carmate/internal/middleware"
	"github.com/carmate/carmate/internal/queue"
	"github.com/carmate/carmate/internal/repository"
	"github.com/carmate/carmate/internal/router"
	"github.com/carmate/carmate/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win either way
	cfg := config.Load()

	fs := store.NewFileStore(cfg.DBPath)
	carRepo := repository.NewCarRepo(fs)
	rentalRepo := repository.NewRentalRepo(fs)

	cars := handler.NewCarHandler(carRepo)
	rentals := handler.NewRentalHandler(rentalRepo, carRepo, cfg.AMQPURL)
	rec := handler.NewRecommendHandler(carRepo)

	// Redis is optional: a nil client turns both middlewares into
	// pass-throughs and the server runs fine without it.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiter disabled")
	}
	apiMW := []echo.MiddlewareFunc{
		middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb),
		middleware.NewResponseCache(config.LoadCacheConfig(), rdb),
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterAPI(e, cars, rentals, rec, apiMW...)
	router.RegisterSPA(e, cfg.PublicDir)

	// The rental event consumer only runs when a broker is configured.
	if cfg.AMQPURL != "" {
		go queue.StartRentalConsumer(cfg.AMQPURL)
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
