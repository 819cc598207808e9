package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carmate/carmate/internal/model"
	"github.com/carmate/carmate/internal/repository"
)

// AddReview handles POST /api/cars/:id/reviews.  The review is prepended
// to the car's list so the newest review always renders first.
func (h *CarHandler) AddReview(c echo.Context) error {
	carID, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var review model.Review
	if err := c.Bind(&review); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	review.User = strings.TrimSpace(review.User)
	if review.User == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user is required"})
	}
	if review.Rating < 1 || review.Rating > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "rating must be between 1 and 5"})
	}
	created, err := h.Cars.AddReview(c.Request().Context(), carID, review)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "car not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save review"})
	}
	return c.JSON(http.StatusCreated, created)
}
