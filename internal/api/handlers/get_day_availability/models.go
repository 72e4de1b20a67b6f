package get_day_availability

import (
	getDayAvailability "github.com/ladypant/store-booking-service/internal/usecase/get_day_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date           string   `json:"date"`
	Blocked        bool     `json:"blocked"`
	Slots          []string `json:"slots"`
	RemainingItems int      `json:"remainingItems"`
	DailyItemCap   int      `json:"dailyItemCap"`
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getDayAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:           resp.Date,
		Blocked:        resp.Blocked,
		Slots:          resp.Slots,
		RemainingItems: resp.RemainingItems,
		DailyItemCap:   resp.DailyItemCap,
	}
}
