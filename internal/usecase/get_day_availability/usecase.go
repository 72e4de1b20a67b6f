package get_day_availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ladypant/store-booking-service/internal/domain"
)

// UseCase computes which slots remain open on a date and how many items
// remain under the daily cap. Nothing is cached: every query recomputes from
// the current store state.
type UseCase struct {
	store  BookingStore
	rules  domain.Rules
	logger Logger
}

// NewUseCase creates a new instance of the use case
func NewUseCase(store BookingStore, rules domain.Rules, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		rules:  rules,
		logger: logger,
	}
}

// Execute returns the availability for the requested date
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := strings.TrimSpace(req.Date)
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		uc.logger.Warn("GetDayAvailability: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if uc.rules.IsBlockedDate(date) {
		uc.logger.Info("GetDayAvailability: date=%s is blocked", date)
		return &Response{
			Date:         date,
			Blocked:      true,
			Slots:        []string{},
			DailyItemCap: uc.rules.DailyItemCap,
		}, nil
	}

	bookings := uc.store.GetByDate(ctx, date)

	resp := &Response{
		Date:           date,
		Slots:          availableSlots(uc.rules.SlotCatalog, bookings),
		RemainingItems: remainingCapacity(uc.rules.DailyItemCap, bookings),
		DailyItemCap:   uc.rules.DailyItemCap,
	}

	uc.logger.Info("GetDayAvailability: date=%s open_slots=%d remaining_items=%d",
		date, len(resp.Slots), resp.RemainingItems)
	return resp, nil
}
