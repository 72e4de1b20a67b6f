package get_calendar

import (
	"context"

	"github.com/ladypant/store-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetCalendar(ctx context.Context, year int) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
