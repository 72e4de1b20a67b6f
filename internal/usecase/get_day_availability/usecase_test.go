package get_day_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladypant/store-booking-service/internal/domain"
)

type fakeStore struct {
	byDate map[string][]*domain.Booking
}

func (s *fakeStore) GetByDate(ctx context.Context, date string) []*domain.Booking {
	return s.byDate[date]
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func booked(slot string, items int) *domain.Booking {
	return &domain.Booking{
		ID:    "b-" + slot,
		Email: "client@example.com",
		Date:  "2025-08-05",
		Time:  slot,
		Items: items,
	}
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeStore{byDate: map[string][]*domain.Booking{}}, domain.DefaultRules(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-08-05"})
	require.NoError(t, err)

	assert.False(t, resp.Blocked)
	assert.Equal(t, domain.DefaultRules().SlotCatalog, resp.Slots, "an empty day offers the full catalog")
	assert.Equal(t, 80, resp.RemainingItems)
	assert.Equal(t, 80, resp.DailyItemCap)
}

func TestExecute_BookedSlotsDropOutInCatalogOrder(t *testing.T) {
	store := &fakeStore{byDate: map[string][]*domain.Booking{
		"2025-08-05": {booked("11:00 AM", 10), booked("2:00 PM", 25)},
	}}
	uc := NewUseCase(store, domain.DefaultRules(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-08-05"})
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00 AM", "12:00 PM", "1:00 PM", "3:00 PM", "4:00 PM"}, resp.Slots)
	assert.Equal(t, 45, resp.RemainingItems)
}

func TestExecute_RemainingItemsFloorsAtZero(t *testing.T) {
	store := &fakeStore{byDate: map[string][]*domain.Booking{
		"2025-08-05": {booked("10:00 AM", 60), booked("11:00 AM", 30)},
	}}
	uc := NewUseCase(store, domain.DefaultRules(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-08-05"})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.RemainingItems, "an over-booked snapshot never reports negative capacity")
}

func TestExecute_BlockedDates(t *testing.T) {
	uc := NewUseCase(&fakeStore{}, domain.DefaultRules(), nopLogger{})

	tests := []struct {
		name string
		date string
	}{
		{"sunday", "2025-08-03"},
		{"labour day", "2025-09-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{Date: tt.date})
			require.NoError(t, err)

			assert.True(t, resp.Blocked)
			assert.Empty(t, resp.Slots)
			assert.Equal(t, 0, resp.RemainingItems)
		})
	}
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := NewUseCase(&fakeStore{}, domain.DefaultRules(), nopLogger{})

	for _, date := range []string{"", "not-a-date", "08/05/2025", "2025-13-45"} {
		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q", date)
	}
}
