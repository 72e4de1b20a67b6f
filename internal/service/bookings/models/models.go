package models

import (
	"time"

	"github.com/ladypant/store-booking-service/internal/domain"
)

// Response models

// BookingResponse carries one booking for display
type BookingResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Date      string `json:"date"` // "2025-08-01"
	Time      string `json:"time"` // "2:00 PM"
	Items     int    `json:"items"`
	CreatedAt string `json:"createdAt"`
}

// BookingListResponse carries a list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CalendarDay is the occupancy of one calendar date
type CalendarDay struct {
	Date           string `json:"date"`
	Items          int    `json:"items"`          // items booked on the date
	RemainingItems int    `json:"remainingItems"` // daily cap minus booked, floored at 0
	Blocked        bool   `json:"blocked"`        // closed weekday or holiday
}

// CalendarResponse is the per-day occupancy of one year
type CalendarResponse struct {
	Year         int           `json:"year"`
	DailyItemCap int           `json:"dailyItemCap"`
	Days         []CalendarDay `json:"days"`
}

// FromDomainBooking converts a domain booking to its response model
func FromDomainBooking(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Date:      b.Date,
		Time:      b.Time,
		Items:     b.Items,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList converts a list of domain bookings
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out}
}
