package get_all_bookings

import (
	"context"

	"github.com/ladypant/store-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetAllBookings(ctx context.Context, date *string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
