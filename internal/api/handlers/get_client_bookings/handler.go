package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/ladypant/store-booking-service/internal/api/handlers"
	"github.com/ladypant/store-booking-service/internal/service/bookings"
)

const (
	msgMissingEmail = "email is required"
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

// Handle GET /api/v1/bookings?email=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		h.logger.Warn("GET /bookings - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	result, err := h.service.GetClientBookings(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid email: %q", email)
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved: email=%s, count=%d", email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
