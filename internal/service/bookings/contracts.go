package bookings

import (
	"context"

	"github.com/ladypant/store-booking-service/internal/domain"
)

// BookingStore is the booking store interface the service depends on
type BookingStore interface {
	Cancel(ctx context.Context, id string) bool
	All(ctx context.Context) []*domain.Booking
	GetByEmail(ctx context.Context, email string) []*domain.Booking
}

// Logger is the logging interface for the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
