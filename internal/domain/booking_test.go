package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() RawBooking {
	return RawBooking{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Phone: "403-555-0101",
		Date:  "2025-08-05",
		Time:  "2:00 PM",
		Items: 10,
	}
}

func TestNewBooking_Valid(t *testing.T) {
	b, err := NewBooking(validRaw())
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", b.Name)
	assert.Equal(t, "jane@example.com", b.Email)
	assert.Equal(t, "2025-08-05", b.Date)
	assert.Equal(t, "2:00 PM", b.Time)
	assert.Equal(t, 10, b.Items)

	// The store assigns both on insert
	assert.Empty(t, b.ID)
	assert.True(t, b.CreatedAt.IsZero())
}

func TestNewBooking_Normalization(t *testing.T) {
	raw := RawBooking{
		Name:  "  Jane Doe  ",
		Email: " Jane@Example.COM ",
		Phone: " 403-555-0101 ",
		Date:  " 2025-08-05 ",
		Time:  " 2:00 PM ",
		Items: 5,
	}

	b, err := NewBooking(raw)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", b.Name)
	assert.Equal(t, "jane@example.com", b.Email, "email is lower-cased, it is the lookup key")
	assert.Equal(t, "403-555-0101", b.Phone)
	assert.Equal(t, "2025-08-05", b.Date)
	assert.Equal(t, "2:00 PM", b.Time)
}

func TestNewBooking_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RawBooking)
	}{
		{"empty name", func(r *RawBooking) { r.Name = "" }},
		{"blank name", func(r *RawBooking) { r.Name = "   " }},
		{"empty email", func(r *RawBooking) { r.Email = "" }},
		{"malformed email", func(r *RawBooking) { r.Email = "not-an-email" }},
		{"empty date", func(r *RawBooking) { r.Date = "" }},
		{"malformed date", func(r *RawBooking) { r.Date = "08/05/2025" }},
		{"impossible date", func(r *RawBooking) { r.Date = "2025-13-45" }},
		{"empty time", func(r *RawBooking) { r.Time = "" }},
		{"zero items", func(r *RawBooking) { r.Items = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			b, err := NewBooking(raw)
			assert.Nil(t, b)
			assert.ErrorIs(t, err, ErrInvalidBooking)
		})
	}
}

func TestNewBooking_PhoneIsOptional(t *testing.T) {
	raw := validRaw()
	raw.Phone = ""

	b, err := NewBooking(raw)
	require.NoError(t, err)
	assert.Empty(t, b.Phone)
}
