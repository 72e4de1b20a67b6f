package booking

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladypant/store-booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookings.json")
	return NewRepository(path, nopLogger{}), path
}

func testBooking(email, date, slot string, items int) *domain.Booking {
	return &domain.Booking{
		Name:  "Jane Doe",
		Email: email,
		Date:  date,
		Time:  slot,
		Items: items,
	}
}

func TestAdd_AssignsIDAndCreatedAt(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	a := repo.Add(ctx, testBooking("a@example.com", "2025-08-05", "10:00 AM", 5))
	b := repo.Add(ctx, testBooking("b@example.com", "2025-08-05", "11:00 AM", 5))

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo, path := newTestRepository(t)
	ctx := context.Background()

	repo.Add(ctx, testBooking("a@example.com", "2025-08-05", "10:00 AM", 5))
	repo.Add(ctx, testBooking("b@example.com", "2025-08-06", "2:00 PM", 30))
	repo.Add(ctx, testBooking("a@example.com", "2025-08-07", "4:00 PM", 12))

	// a fresh repository on the same path sees everything
	reloaded := NewRepository(path, nopLogger{})
	all := reloaded.All(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "2025-08-05", all[0].Date)
	assert.Equal(t, 30, all[1].Items)
	assert.NotEmpty(t, all[2].ID)
}

func TestCancel(t *testing.T) {
	repo, path := newTestRepository(t)
	ctx := context.Background()

	a := repo.Add(ctx, testBooking("a@example.com", "2025-08-05", "10:00 AM", 5))
	repo.Add(ctx, testBooking("b@example.com", "2025-08-05", "11:00 AM", 5))

	assert.True(t, repo.Cancel(ctx, a.ID))
	assert.Len(t, repo.All(ctx), 1, "exactly the cancelled booking is removed")

	assert.False(t, repo.Cancel(ctx, a.ID), "cancelling twice is a no-op")
	assert.False(t, repo.Cancel(ctx, "no-such-id"))

	// the removal is persisted
	reloaded := NewRepository(path, nopLogger{})
	assert.Len(t, reloaded.All(ctx), 1)
}

func TestGetByDate(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	repo.Add(ctx, testBooking("a@example.com", "2025-08-05", "10:00 AM", 5))
	repo.Add(ctx, testBooking("b@example.com", "2025-08-06", "10:00 AM", 5))
	repo.Add(ctx, testBooking("c@example.com", "2025-08-05", "2:00 PM", 8))

	found := repo.GetByDate(ctx, "2025-08-05")
	require.Len(t, found, 2)
	assert.Equal(t, "a@example.com", found[0].Email)
	assert.Equal(t, "c@example.com", found[1].Email)

	assert.Empty(t, repo.GetByDate(ctx, "2025-08-09"))
}

func TestGetByEmail_SortedByDateThenTime(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	repo.Add(ctx, testBooking("a@example.com", "2025-08-07", "10:00 AM", 5))
	repo.Add(ctx, testBooking("a@example.com", "2025-08-05", "2:00 PM", 5))
	repo.Add(ctx, testBooking("b@example.com", "2025-08-05", "11:00 AM", 5))
	repo.Add(ctx, testBooking("a@example.com", "2025-08-05", "10:00 AM", 5))

	found := repo.GetByEmail(ctx, "a@example.com")
	require.Len(t, found, 3)
	assert.Equal(t, "2025-08-05", found[0].Date)
	assert.Equal(t, "10:00 AM", found[0].Time)
	assert.Equal(t, "2:00 PM", found[1].Time)
	assert.Equal(t, "2025-08-07", found[2].Date)
}

func TestLoad_CorruptSnapshotStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	repo := NewRepository(path, nopLogger{})
	assert.Empty(t, repo.All(context.Background()))
}

func TestSave_FailureIsNonFatal(t *testing.T) {
	// a file where the snapshot directory should be makes every save fail
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	repo := NewRepository(filepath.Join(blocker, "bookings.json"), nopLogger{})
	created := repo.Add(context.Background(), testBooking("a@example.com", "2025-08-05", "10:00 AM", 5))

	assert.NotEmpty(t, created.ID, "the in-memory state stands when persistence fails")
	assert.Len(t, repo.All(context.Background()), 1)
}

func TestReturnedBookingsAreCopies(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	repo.Add(ctx, testBooking("a@example.com", "2025-08-05", "10:00 AM", 5))

	first := repo.All(ctx)
	first[0].Items = 999

	again := repo.All(ctx)
	assert.Equal(t, 5, again[0].Items, "callers never mutate the stored state")
}
