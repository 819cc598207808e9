package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carmate/carmate/internal/model"
	"github.com/carmate/carmate/internal/queue"
	"github.com/carmate/carmate/internal/repository"
	"github.com/carmate/carmate/internal/service"
)

// RentalHandler bundles the rental request endpoints.  CarRepo is only
// consulted to enrich the rental.requested event with listing details;
// rental creation itself never checks that the referenced car exists.
type RentalHandler struct {
	Rentals *repository.RentalRepo
	Cars    *repository.CarRepo
	AMQPURL string // empty disables event publishing
}

// NewRentalHandler constructs a RentalHandler.  amqpURL may be empty, in
// which case created rentals are not announced on the broker.
func NewRentalHandler(rentals *repository.RentalRepo, cars *repository.CarRepo, amqpURL string) *RentalHandler {
	return &RentalHandler{Rentals: rentals, Cars: cars, AMQPURL: amqpURL}
}

// ListRentals handles GET /api/rentals and returns every request, newest
// first.
func (h *RentalHandler) ListRentals(c echo.Context) error {
	rentals, err := h.Rentals.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load rentals"})
	}
	return c.JSON(http.StatusOK, rentals)
}

// CreateRental handles POST /api/rentals.  The status is forced to
// Pending no matter what the payload carried, and the date range must be
// non-empty with the end date strictly after the start date.  Dates are
// compared as strings: the client sends ISO "YYYY-MM-DD" values, which
// order lexicographically.
func (h *RentalHandler) CreateRental(c echo.Context) error {
	var rental model.Rental
	if err := c.Bind(&rental); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if rental.CarID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "carId is required"})
	}
	if rental.StartDate == "" || rental.EndDate == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "startDate and endDate are required"})
	}
	if rental.EndDate <= rental.StartDate {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "endDate must be after startDate"})
	}
	created, err := h.Rentals.Create(c.Request().Context(), rental)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save rental"})
	}
	h.announce(c, created)
	return c.JSON(http.StatusCreated, created)
}

// UpdateRentalStatus handles PUT /api/rentals/:id with a {"status": ...}
// body.  The status must be one of the three known states; anything else
// is rejected instead of being persisted verbatim.
func (h *RentalHandler) UpdateRentalStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	status, err := model.ParseStatus(body.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status"})
	}
	updated, err := h.Rentals.SetStatus(c.Request().Context(), id, status)
	if err != nil {
		if errors.Is(err, repository.ErrRentalNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "rental not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save rental"})
	}
	return c.JSON(http.StatusOK, updated)
}

// announce publishes a rental.requested event, best effort.  Publish
// failures are logged inside the publisher and otherwise ignored; the
// request flow never depends on the broker.
func (h *RentalHandler) announce(c echo.Context, rental model.Rental) {
	if h.AMQPURL == "" {
		return
	}
	ev := queue.RentalRequestedEvent{
		RentalID:    rental.ID,
		CarID:       rental.CarID,
		StartDate:   rental.StartDate,
		EndDate:     rental.EndDate,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if cars, err := h.Cars.List(c.Request().Context()); err == nil {
		for _, car := range cars {
			if car.ID == rental.CarID {
				ev.CarMake = car.Make
				ev.CarModel = car.Model
				break
			}
		}
	}
	_ = service.PublishRentalRequested(c.Request().Context(), h.AMQPURL, ev)
}
