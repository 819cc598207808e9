package model

import "errors"

// Status is the lifecycle state of a rental request.  The zero value is
// not valid; new rentals always start as StatusPending and an admin moves
// them to Approved or Declined.  The wire spellings are capitalized to
// stay compatible with documents written by earlier versions.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"
)

// ErrInvalidStatus is returned by ParseStatus for any value outside the
// closed set above.  Handlers should translate this into an HTTP 400.
var ErrInvalidStatus = errors.New("invalid rental status")

// ParseStatus validates a raw status string against the closed enum.
// Unknown values are rejected rather than persisted as-is.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusDeclined:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// Rental is a request to rent a specific car over a date range.  The
// referenced car is not guaranteed to exist: listings can be deleted after
// a request is filed, and the request survives as a dangling reference.
//
// Fields:
//  ID        – numeric identifier, same generation scheme as Car.ID.
//  CarID     – identity of the requested car.
//  StartDate – first rental day, "YYYY-MM-DD".
//  EndDate   – last rental day, "YYYY-MM-DD", strictly after StartDate.
//  Status    – Pending on creation, then Approved or Declined.
type Rental struct {
	ID        int64  `json:"id"`
	CarID     int64  `json:"carId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    Status `json:"status"`
}
