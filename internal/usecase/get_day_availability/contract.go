package get_day_availability

import (
	"context"

	"github.com/ladypant/store-booking-service/internal/domain"
)

// BookingStore is the booking store interface the use case depends on
type BookingStore interface {
	GetByDate(ctx context.Context, date string) []*domain.Booking
}

// Logger is the logging interface for the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
