package domain

import "time"

// Rules holds the booking limits for the store location.
// A single Rules value is built from configuration at startup and injected
// into every component that validates or reports availability.
type Rules struct {
	SlotCatalog   []string     // ordered bookable time labels for an open day
	DailyItemCap  int          // max total items summed across one date
	CappedSlot    string       // the designated slot with its own per-booking cap
	CappedSlotCap int          // per-booking item cap for CappedSlot, tighter than DailyItemCap
	ClosedWeekday time.Weekday // weekly recurring closed day
}

// DefaultRules returns the rules the store ships with
func DefaultRules() Rules {
	catalog := make([]string, len(DefaultSlotCatalog))
	copy(catalog, DefaultSlotCatalog)

	return Rules{
		SlotCatalog:   catalog,
		DailyItemCap:  DefaultDailyItemCap,
		CappedSlot:    DefaultCappedSlot,
		CappedSlotCap: DefaultCappedSlotCap,
		ClosedWeekday: DefaultClosedWeekday,
	}
}

// HasSlot reports whether the label is part of the slot catalog
func (r Rules) HasSlot(label string) bool {
	for _, slot := range r.SlotCatalog {
		if slot == label {
			return true
		}
	}
	return false
}

// CapForSlot returns the per-booking item cap applying to the given slot.
// Only the designated capped slot is stricter than the daily cap.
func (r Rules) CapForSlot(label string) int {
	if label == r.CappedSlot {
		return r.CappedSlotCap
	}
	return r.DailyItemCap
}

// IsBlockedDate reports whether bookings are blocked on the date
func (r Rules) IsBlockedDate(date string) bool {
	return IsBlockedDate(date, r.ClosedWeekday)
}
