package domain

import "time"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default booking rules for the store location
const (
	DefaultDailyItemCap  = 80
	DefaultCappedSlotCap = 30
	DefaultCappedSlot    = "4:00 PM"
	DefaultClosedWeekday = time.Sunday
)

// DefaultSlotCatalog is the ordered list of bookable time labels for an open day.
// The catalog is identical for every open day and fixed per deployment.
var DefaultSlotCatalog = []string{
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
}
