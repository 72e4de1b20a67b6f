package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidBooking is returned by NewBooking when a raw submission fails
// field-level validation (missing, empty or malformed fields)
var ErrInvalidBooking = errors.New("domain: invalid booking")

// Booking is a confirmed reservation for one date/time slot.
// ID is assigned by the store at creation and never reused; there is no
// update-in-place, changing a booking is cancel plus recreate.
type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // normalized, the client's lookup key
	Phone     string    `json:"phone,omitempty"`
	Date      string    `json:"date"` // YYYY-MM-DD, wall-clock date
	Time      string    `json:"time"` // one label from the slot catalog
	Items     int       `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}

// RawBooking carries unvalidated form fields as submitted by a client
type RawBooking struct {
	Name  string
	Email string
	Phone string
	Date  string
	Time  string
	Items int
}

// checkedBooking mirrors RawBooking after normalization, with validation tags.
// Items uses required (non-zero); positivity is a separate booking rule so that
// the closed-day check is reported ahead of a bad item count.
type checkedBooking struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Date  string `validate:"required,datetime=2006-01-02"`
	Time  string `validate:"required"`
	Items int    `validate:"required"`
}

var validate = validator.New()

// NewBooking normalizes and type-checks every raw field, returning a typed
// Booking or ErrInvalidBooking naming the first offending field.
// ID and CreatedAt are left zero; the booking store assigns both.
//
// Normalization follows the store's client records: name/phone/date/time are
// trimmed, email is trimmed and lower-cased (it is the lookup key).
func NewBooking(raw RawBooking) (*Booking, error) {
	checked := checkedBooking{
		Name:  strings.TrimSpace(raw.Name),
		Email: strings.ToLower(strings.TrimSpace(raw.Email)),
		Date:  strings.TrimSpace(raw.Date),
		Time:  strings.TrimSpace(raw.Time),
		Items: raw.Items,
	}

	if err := validate.Struct(checked); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, fmt.Errorf("%w: %s failed %q check", ErrInvalidBooking, strings.ToLower(fe.Field()), fe.Tag())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBooking, err)
	}

	return &Booking{
		Name:  checked.Name,
		Email: checked.Email,
		Phone: strings.TrimSpace(raw.Phone),
		Date:  checked.Date,
		Time:  checked.Time,
		Items: raw.Items,
	}, nil
}
