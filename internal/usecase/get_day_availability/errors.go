package get_day_availability

import "errors"

var (
	// ErrInvalidDate is returned when the date is absent or not YYYY-MM-DD
	ErrInvalidDate = errors.New("get_day_availability: invalid date")
)
