package get_day_availability

import "github.com/ladypant/store-booking-service/internal/domain"

// availableSlots returns the slot catalog minus the times already booked,
// preserving catalog order
func availableSlots(catalog []string, bookings []*domain.Booking) []string {
	taken := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		taken[b.Time] = struct{}{}
	}

	open := make([]string, 0, len(catalog))
	for _, slot := range catalog {
		if _, ok := taken[slot]; !ok {
			open = append(open, slot)
		}
	}
	return open
}

// remainingCapacity returns the daily cap minus the items already booked,
// floored at zero
func remainingCapacity(dailyCap int, bookings []*domain.Booking) int {
	booked := 0
	for _, b := range bookings {
		booked += b.Items
	}

	remaining := dailyCap - booked
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
