package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/ladypant/store-booking-service/internal/domain"
	"github.com/ladypant/store-booking-service/internal/integrations/emailjs"
)

// notifyTimeout bounds the fire-and-forget confirmation send
const notifyTimeout = 30 * time.Second

// UseCase creates a booking: it normalizes the candidate, validates it
// against the store's rules and existing bookings, commits it to the store
// and then dispatches the confirmation email as an independent task whose
// result is observed only in logs and metrics, never for correctness.
type UseCase struct {
	store    BookingStore
	notifier Notifier
	rules    domain.Rules
	logger   Logger
}

// NewUseCase creates a new instance of the use case
func NewUseCase(store BookingStore, notifier Notifier, rules domain.Rules, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		notifier: notifier,
		rules:    rules,
		logger:   logger,
	}
}

// Execute validates and creates the booking.
// Rules are applied in a fixed order and the first violated rule determines
// the rejection reason; a rejected candidate is never stored.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s, items=%d",
		req.Email, req.Date, req.Time, req.Items)

	candidate, err := domain.NewBooking(domain.RawBooking{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Date:  req.Date,
		Time:  req.Time,
		Items: req.Items,
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: field validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrMissingFields, err)
	}

	existing := uc.store.GetByDate(ctx, candidate.Date)

	if err := validateAgainstRules(candidate, existing, uc.rules); err != nil {
		uc.logger.Warn("CreateBooking: rejected for date=%s time=%s: %v",
			candidate.Date, candidate.Time, err)
		return nil, err
	}

	created := uc.store.Add(ctx, candidate)

	uc.logger.Info("CreateBooking: accepted booking id=%s date=%s time=%s items=%d",
		created.ID, created.Date, created.Time, created.Items)

	// Commit first, then notify. The send runs on its own context so a slow
	// or failed provider never blocks or rolls back the booking.
	go uc.sendConfirmation(*created)

	return &Response{
		ID:        created.ID,
		Name:      created.Name,
		Email:     created.Email,
		Phone:     created.Phone,
		Date:      created.Date,
		Time:      created.Time,
		Items:     created.Items,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (uc *UseCase) sendConfirmation(b domain.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	err := uc.notifier.Send(ctx, emailjs.Confirmation{
		ToEmail:   b.Email,
		ToName:    b.Name,
		Date:      b.Date,
		Time:      b.Time,
		Items:     b.Items,
		Phone:     b.Phone,
		ReplyTo:   b.Email,
		BookingID: b.ID,
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: confirmation email failed for booking id=%s, booking stands: %v", b.ID, err)
	}
}
