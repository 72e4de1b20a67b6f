package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ladypant/store-booking-service/internal/api/handlers"
	createBooking "github.com/ladypant/store-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingFields      = "please complete all required fields"
	msgUnknownTimeSlot    = "the selected time is not a bookable slot"
	msgDateClosed         = "the store is closed on the selected date"
	msgInvalidItemCount   = "number of items must be a positive whole number"
	msgSlotCapExceeded    = "the selected time has a lower per-booking item limit"
	msgSlotTaken          = "that time is already booked for this date"
	msgDailyCapFmt        = "this would exceed the daily item limit, you can book up to %d items for this day"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingFields):
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrUnknownTimeSlot):
			handlers.RespondBadRequest(w, msgUnknownTimeSlot)

		case errors.Is(err, createBooking.ErrDateClosed):
			handlers.RespondBadRequest(w, msgDateClosed)

		case errors.Is(err, createBooking.ErrInvalidItemCount):
			handlers.RespondBadRequest(w, msgInvalidItemCount)

		case errors.Is(err, createBooking.ErrSlotCapExceeded):
			handlers.RespondConflict(w, msgSlotCapExceeded)

		case errors.Is(err, createBooking.ErrSlotTaken):
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrDailyCapExceeded):
			// The rejection reports how many items remain available
			var capErr *createBooking.DailyCapError
			remaining := 0
			if errors.As(err, &capErr) {
				remaining = capErr.Remaining
			}
			handlers.RespondConflict(w, fmt.Sprintf(msgDailyCapFmt, remaining))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, date=%s, error=%v",
				req.Email, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, date=%s, time=%s",
		result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
