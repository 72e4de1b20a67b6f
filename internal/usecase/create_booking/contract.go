package create_booking

import (
	"context"

	"github.com/ladypant/store-booking-service/internal/domain"
	"github.com/ladypant/store-booking-service/internal/integrations/emailjs"
)

// BookingStore is the booking store interface the use case depends on
type BookingStore interface {
	GetByDate(ctx context.Context, date string) []*domain.Booking
	Add(ctx context.Context, b *domain.Booking) *domain.Booking
}

// Notifier sends the confirmation email for an accepted booking
type Notifier interface {
	Send(ctx context.Context, conf emailjs.Confirmation) error
}

// Logger is the logging interface for the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
