// Package repository contains the data access logic for cars and rentals,
// separated from HTTP handlers.  Every operation round-trips the backing
// store: load the whole document, mutate it, write it back.  The sentinel
// errors below let handlers map failures onto HTTP statuses without
// inspecting error strings.
package repository

import "errors"

// ErrCarNotFound is returned when no car with the requested identity
// exists in the document.  Handlers translate this into an HTTP 404.
var ErrCarNotFound = errors.New("car not found")

// ErrRentalNotFound is returned when no rental with the requested
// identity exists in the document.  Handlers translate this into an
// HTTP 404.
var ErrRentalNotFound = errors.New("rental not found")
