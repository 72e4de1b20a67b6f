package domain

import "time"

// AlbertaStatHolidays2025 maps Alberta statutory holiday dates for 2025 to their names.
// The store is closed on these dates. Years not covered by this set fail open:
// IsHoliday returns false for them.
var AlbertaStatHolidays2025 = map[string]string{
	"2025-01-01": "New Year's Day",
	"2025-02-17": "Family Day",
	"2025-04-18": "Good Friday",
	"2025-05-19": "Victoria Day",
	"2025-07-01": "Canada Day",
	"2025-09-01": "Labour Day",
	"2025-10-13": "Thanksgiving Day",
	"2025-11-11": "Remembrance Day",
	"2025-12-25": "Christmas Day",
}

// IsClosedWeekday reports whether the date falls on the store's weekly closed day.
// An unparseable date returns false; callers reject malformed dates before
// consulting the calendar.
func IsClosedWeekday(date string, closed time.Weekday) bool {
	d, err := time.Parse(DateFormat, date)
	if err != nil {
		return false
	}
	return d.Weekday() == closed
}

// IsHoliday reports whether the date is a named statutory holiday
func IsHoliday(date string) bool {
	_, ok := AlbertaStatHolidays2025[date]
	return ok
}

// IsBlockedDate reports whether no bookings may be created on the date,
// per the weekly closed-day rule plus the statutory holiday set
func IsBlockedDate(date string, closed time.Weekday) bool {
	return IsClosedWeekday(date, closed) || IsHoliday(date)
}
