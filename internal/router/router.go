// Package router defines how HTTP routes are registered for the API and
// how the single-page client is served.
package router

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/carmate/carmate/internal/handler"
)

// RegisterAPI registers the JSON API under /api plus the health check.
// Any middleware passed in (response cache, rate limiter) applies to the
// API group only, never to static assets.
func RegisterAPI(e *echo.Echo, cars *handler.CarHandler, rentals *handler.RentalHandler, rec *handler.RecommendHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api", mw...)
	// Car listings
	api.GET("/cars", cars.ListCars)
	api.POST("/cars", cars.CreateCar)
	api.PUT("/cars/:id", cars.UpdateCar)
	api.DELETE("/cars/:id", cars.DeleteCar)
	// Reviews live under the car they belong to
	api.POST("/cars/:id/reviews", cars.AddReview)
	// Rental requests
	api.GET("/rentals", rentals.ListRentals)
	api.POST("/rentals", rentals.CreateRental)
	api.PUT("/rentals/:id", rentals.UpdateRentalStatus)
	// Buyer recommendations
	api.POST("/recommendations", rec.Recommend)
}

// RegisterSPA serves the single-page client from publicDir.  HTML5 mode
// makes every unmatched GET fall back to index.html, which is what lets
// the hash-routed client own everything outside /api.
func RegisterSPA(e *echo.Echo, publicDir string) {
	e.Use(echomw.StaticWithConfig(echomw.StaticConfig{
		Root:  publicDir,
		HTML5: true,
		Skipper: func(c echo.Context) bool {
			p := c.Request().URL.Path
			return strings.HasPrefix(p, "/api") || p == "/healthz"
		},
	}))
}
