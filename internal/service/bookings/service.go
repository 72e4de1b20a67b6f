package bookings

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ladypant/store-booking-service/internal/domain"
	"github.com/ladypant/store-booking-service/internal/service/bookings/models"
)

// Service handles booking queries and cancellation for the client lookup and
// the staff screens
type Service struct {
	store  BookingStore
	rules  domain.Rules
	logger Logger
}

// NewService creates a new bookings service
func NewService(store BookingStore, rules domain.Rules, logger Logger) *Service {
	return &Service{
		store:  store,
		rules:  rules,
		logger: logger,
	}
}

// Cancel removes the booking with the given id.
// Cancellation is immediate and unconditional; there is no undo window.
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty booking id", ErrInvalidInput)
	}

	if !s.store.Cancel(ctx, id) {
		s.logger.Warn("Cancel: booking id=%s not found", id)
		return ErrBookingNotFound
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return nil
}

// GetClientBookings returns all bookings for an email address, sorted by
// date then time. The email is normalized the same way bookings store it.
func (s *Service) GetClientBookings(ctx context.Context, email string) (*models.BookingListResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty email", ErrInvalidInput)
	}

	found := s.store.GetByEmail(ctx, normalized)

	s.logger.Info("GetClientBookings: email=%s count=%d", normalized, len(found))
	return models.FromDomainBookingList(found), nil
}

// GetAllBookings returns every booking for the staff table, optionally
// filtered to one date, sorted by date then time
func (s *Service) GetAllBookings(ctx context.Context, date *string) (*models.BookingListResponse, error) {
	if date != nil {
		if _, err := time.Parse(domain.DateFormat, *date); err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *date)
		}
	}

	all := s.store.All(ctx)

	var filtered []*domain.Booking
	if date == nil {
		filtered = all
	} else {
		for _, b := range all {
			if b.Date == *date {
				filtered = append(filtered, b)
			}
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return filtered[i].Time < filtered[j].Time
	})

	s.logger.Info("GetAllBookings: count=%d", len(filtered))
	return models.FromDomainBookingList(filtered), nil
}

// GetCalendar returns the per-day item totals for a whole year, with blocked
// days marked, for the occupancy calendar
func (s *Service) GetCalendar(ctx context.Context, year int) (*models.CalendarResponse, error) {
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidInput, year)
	}

	itemsByDate := make(map[string]int)
	for _, b := range s.store.All(ctx) {
		itemsByDate[b.Date] += b.Items
	}

	resp := &models.CalendarResponse{
		Year:         year,
		DailyItemCap: s.rules.DailyItemCap,
	}

	day := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == year {
		date := day.Format(domain.DateFormat)
		items := itemsByDate[date]

		remaining := s.rules.DailyItemCap - items
		if remaining < 0 {
			remaining = 0
		}

		resp.Days = append(resp.Days, models.CalendarDay{
			Date:           date,
			Items:          items,
			RemainingItems: remaining,
			Blocked:        s.rules.IsBlockedDate(date),
		})
		day = day.AddDate(0, 0, 1)
	}

	s.logger.Info("GetCalendar: year=%d days=%d", year, len(resp.Days))
	return resp, nil
}
