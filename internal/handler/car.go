package handler // handler package contains the HTTP handlers for the marketplace API

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carmate/carmate/internal/model"
	"github.com/carmate/carmate/internal/repository"
)

// CarHandler bundles the car listing endpoints.  It owns nothing beyond
// the repository reference; all state lives in the backing document.
type CarHandler struct {
	Cars *repository.CarRepo
}

// NewCarHandler constructs a CarHandler around the given repository.
func NewCarHandler(cars *repository.CarRepo) *CarHandler {
	return &CarHandler{Cars: cars}
}

// ListCars handles GET /api/cars and returns every listing, unfiltered.
func (h *CarHandler) ListCars(c echo.Context) error {
	cars, err := h.Cars.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load cars"})
	}
	return c.JSON(http.StatusOK, cars)
}

// CreateCar handles POST /api/cars and stores a new listing.  The server
// assigns the identity and an empty reviews list; anything the client put
// in those fields is discarded.
func (h *CarHandler) CreateCar(c echo.Context) error {
	var car model.Car
	if err := c.Bind(&car); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg, ok := validateCar(&car); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	created, err := h.Cars.Create(c.Request().Context(), car)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save car"})
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateCar handles PUT /api/cars/:id.  The stored record is replaced by
// the payload except for its reviews, which are always preserved from the
// previous record.
func (h *CarHandler) UpdateCar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var car model.Car
	if err := c.Bind(&car); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg, ok := validateCar(&car); !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	updated, err := h.Cars.Update(c.Request().Context(), id, car)
	if err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "car not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save car"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCar handles DELETE /api/cars/:id and answers 204 on success.
func (h *CarHandler) DeleteCar(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Cars.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCarNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "car not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete car"})
	}
	return c.NoContent(http.StatusNoContent)
}

// validateCar enforces the required listing fields.  Only make and model
// are mandatory; numeric fields pass through as sent so that the admin
// form stays the single source of shape.
func validateCar(car *model.Car) (string, bool) {
	car.Make = strings.TrimSpace(car.Make)
	car.Model = strings.TrimSpace(car.Model)
	if car.Make == "" {
		return "make is required", false
	}
	if car.Model == "" {
		return "model is required", false
	}
	return "", true
}

// parseID extracts the numeric :id path parameter.
func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
