package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the given id
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput is returned on malformed service input
	ErrInvalidInput = errors.New("invalid input data")
)
