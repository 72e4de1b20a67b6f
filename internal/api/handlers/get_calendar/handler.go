package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ladypant/store-booking-service/internal/api/handlers"
	"github.com/ladypant/store-booking-service/internal/service/bookings"
)

const (
	msgInvalidYear = "invalid year"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: year (optional, defaults to the current year)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			h.logger.Warn("GET /calendar - Invalid year: %q", y)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	result, err := h.service.GetCalendar(r.Context(), year)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Year out of range: %d", year)
			handlers.RespondBadRequest(w, msgInvalidYear)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: year=%d, error=%v", year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar retrieved: year=%d", year)
	handlers.RespondJSON(w, http.StatusOK, result)
}
