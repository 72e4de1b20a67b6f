package create_booking

import (
	"fmt"

	"github.com/ladypant/store-booking-service/internal/domain"
)

// validateAgainstRules applies the booking rules to a normalized candidate in
// a fixed order, so the first violated rule determines the reported reason:
// slot catalog membership, closed day, item positivity, slot cap, double
// booking, daily cap.
func validateAgainstRules(candidate *domain.Booking, existing []*domain.Booking, rules domain.Rules) error {
	if !rules.HasSlot(candidate.Time) {
		return fmt.Errorf("%w: %q", ErrUnknownTimeSlot, candidate.Time)
	}

	if rules.IsBlockedDate(candidate.Date) {
		return fmt.Errorf("%w: %s", ErrDateClosed, candidate.Date)
	}

	if candidate.Items <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidItemCount, candidate.Items)
	}

	if candidate.Time == rules.CappedSlot && candidate.Items > rules.CappedSlotCap {
		return fmt.Errorf("%w: at %s the limit is %d items", ErrSlotCapExceeded, rules.CappedSlot, rules.CappedSlotCap)
	}

	if slotTaken(candidate, existing) {
		return fmt.Errorf("%w: %s %s", ErrSlotTaken, candidate.Date, candidate.Time)
	}

	booked := bookedItemsTotal(existing)
	if booked+candidate.Items > rules.DailyItemCap {
		remaining := rules.DailyItemCap - booked
		if remaining < 0 {
			remaining = 0
		}
		return &DailyCapError{Remaining: remaining}
	}

	return nil
}

// slotTaken reports whether any existing booking on the candidate's date
// already holds the candidate's time
func slotTaken(candidate *domain.Booking, existing []*domain.Booking) bool {
	for _, b := range existing {
		if b.Time == candidate.Time {
			return true
		}
	}
	return false
}

// bookedItemsTotal sums the items of all given bookings
func bookedItemsTotal(bookings []*domain.Booking) int {
	total := 0
	for _, b := range bookings {
		total += b.Items
	}
	return total
}
