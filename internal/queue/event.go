// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// RentalRequestedEvent is published when a rental request is filed.  It
// carries enough listing detail for downstream consumers to log or notify
// without reading the marketplace document.  CarMake and CarModel may be
// empty when the request references a listing that no longer exists.
type RentalRequestedEvent struct {
	RentalID    int64  `json:"rental_id"`
	CarID       int64  `json:"car_id"`
	CarMake     string `json:"car_make,omitempty"`
	CarModel    string `json:"car_model,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	RequestedAt string `json:"requested_at"`
}

// RentalQueueName is the broker queue carrying RentalRequestedEvent
// messages.  Publisher and consumer both declare it durable.
const RentalQueueName = "rental.requested"
