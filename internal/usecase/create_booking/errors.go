package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields is returned when a required field is absent, empty or malformed
	ErrMissingFields = errors.New("create_booking: missing or malformed required fields")

	// ErrUnknownTimeSlot is returned when the requested time is not in the slot catalog
	ErrUnknownTimeSlot = errors.New("create_booking: time is not a bookable slot")

	// ErrDateClosed is returned when the store is closed on the requested date
	ErrDateClosed = errors.New("create_booking: store is closed on this date")

	// ErrInvalidItemCount is returned when the item count is not a positive integer
	ErrInvalidItemCount = errors.New("create_booking: item count must be positive")

	// ErrSlotCapExceeded is returned when the item count exceeds the designated
	// slot's per-booking cap
	ErrSlotCapExceeded = errors.New("create_booking: item count exceeds the slot cap")

	// ErrSlotTaken is returned when the date/time slot already holds a booking
	ErrSlotTaken = errors.New("create_booking: time slot is already booked for this date")

	// ErrDailyCapExceeded is returned when accepting the booking would push the
	// date's item total over the daily cap
	ErrDailyCapExceeded = errors.New("create_booking: daily item cap exceeded")
)

// DailyCapError carries how many items remain bookable on the date.
// It unwraps to ErrDailyCapExceeded.
type DailyCapError struct {
	Remaining int
}

func (e *DailyCapError) Error() string {
	return fmt.Sprintf("%v, %d items remain for this day", ErrDailyCapExceeded, e.Remaining)
}

func (e *DailyCapError) Unwrap() error {
	return ErrDailyCapExceeded
}
