package get_day_availability

// Request asks for the availability of one date
type Request struct {
	Date string // "2025-08-01"
}

// Response reports what remains bookable on the date.
// On a blocked date no slots are open and no items remain.
type Response struct {
	Date           string
	Blocked        bool
	Slots          []string // open slot labels in catalog order
	RemainingItems int      // items still bookable under the daily cap
	DailyItemCap   int
}
