package create_booking

import (
	"time"

	createBooking "github.com/ladypant/store-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Date  string `json:"date"` // "2025-08-01"
	Time  string `json:"time"` // "2:00 PM"
	Items int    `json:"items"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Items     int    `json:"items"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
		Date:  r.Date,
		Time:  r.Time,
		Items: r.Items,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Date:      resp.Date,
		Time:      resp.Time,
		Items:     resp.Items,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
