package emailjs

// Confirmation is the flat record handed to the provider for one booking
// confirmation email
type Confirmation struct {
	ToEmail   string
	ToName    string
	Date      string
	Time      string
	Items     int
	Phone     string
	ReplyTo   string
	BookingID string
}

// sendRequest is the EmailJS REST API payload
type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"` // the account public key
	TemplateParams templateParams `json:"template_params"`
}

// templateParams matches the store's EmailJS confirmation template
type templateParams struct {
	ToEmail      string `json:"to_email"`
	ToName       string `json:"to_name"`
	BookingDate  string `json:"booking_date"`
	BookingTime  string `json:"booking_time"`
	BookingItems string `json:"booking_items"`
	Phone        string `json:"phone"`
	Email        string `json:"email"` // reply-to
	BookingID    string `json:"booking_id"`
}
