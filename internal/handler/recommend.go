package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carmate/carmate/internal/recommend"
	"github.com/carmate/carmate/internal/repository"
)

// RecommendHandler serves the buyer-side recommendation endpoint.
type RecommendHandler struct {
	Cars *repository.CarRepo
}

// NewRecommendHandler constructs a RecommendHandler.
func NewRecommendHandler(cars *repository.CarRepo) *RecommendHandler {
	return &RecommendHandler{Cars: cars}
}

// Recommend handles POST /api/recommendations with an optional budget and
// usage category.  A JSON null or missing budget means no price ceiling;
// an unknown usage value is a 400 rather than an empty result, so typos
// are visible instead of looking like "no matching cars".
func (h *RecommendHandler) Recommend(c echo.Context) error {
	var body struct {
		Budget *float64 `json:"budget"`
		Usage  string   `json:"usage"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	usage, err := recommend.ParseUsage(body.Usage)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid usage category"})
	}
	cars, err := h.Cars.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load cars"})
	}
	matches := recommend.Recommend(cars, recommend.Criteria{Budget: body.Budget, Usage: usage})
	return c.JSON(http.StatusOK, matches)
}
