package create_booking

import "time"

// Request carries the candidate booking as submitted by a client
type Request struct {
	Name  string
	Email string
	Phone string
	Date  string // "2025-08-01"
	Time  string // "2:00 PM"
	Items int
}

// Response carries the accepted booking
type Response struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Date      string
	Time      string
	Items     int
	CreatedAt time.Time
}
