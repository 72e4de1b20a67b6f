package booking

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ladypant/store-booking-service/internal/domain"
)

// snapshot is the persisted state layout: a single named record holding the
// full booking sequence, serialized as JSON
type snapshot struct {
	Bookings []*domain.Booking `json:"bookings"`
}

// Repository is the booking store: an in-memory collection mutated only
// through Add and Cancel, persisted synchronously to a JSON snapshot file on
// every mutation.
//
// Persistence is best-effort. A failed save is logged as a warning and the
// in-memory state stays authoritative for the current process; a missing or
// corrupt snapshot on startup loads as an empty collection, never an error.
type Repository struct {
	path string
	log  Logger

	mu       sync.Mutex
	bookings []*domain.Booking
}

// NewRepository creates the store and loads any prior snapshot from path
func NewRepository(path string, log Logger) *Repository {
	r := &Repository{
		path: path,
		log:  log,
	}
	r.load()
	return r
}

// Add assigns a fresh unique id, appends the booking and persists the
// collection before returning. The returned booking is a copy owned by the
// caller.
func (r *Repository) Add(ctx context.Context, b *domain.Booking) *domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *b
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()

	r.bookings = append(r.bookings, &stored)
	r.save()

	out := stored
	return &out
}

// Cancel removes the booking matching id and persists. It reports whether a
// record was actually removed; cancelling an unknown id is a no-op.
func (r *Repository) Cancel(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.bookings {
		if b.ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			r.save()
			return true
		}
	}
	return false
}

// All returns a copy of every booking in insertion order
func (r *Repository) All(ctx context.Context) []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	return copyBookings(r.bookings)
}

// GetByDate returns all bookings on the given date in insertion order
func (r *Repository) GetByDate(ctx context.Context, date string) []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.Date == date {
			c := *b
			out = append(out, &c)
		}
	}
	return out
}

// GetByEmail returns all bookings for the normalized email, sorted by
// date then time for stable display
func (r *Repository) GetByEmail(ctx context.Context, email string) []*domain.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.Email == email {
			c := *b
			out = append(out, &c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// load reads the snapshot file into memory. Missing file or parse failure
// yields an empty collection.
func (r *Repository) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.Info("booking store: no snapshot at %s, starting empty", r.path)
		} else {
			r.log.Warn("booking store: failed to read snapshot %s, starting empty: %v", r.path, err)
		}
		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		r.log.Warn("booking store: corrupt snapshot %s, starting empty: %v", r.path, err)
		return
	}

	r.bookings = snap.Bookings
	r.log.Info("booking store: loaded %d bookings from %s", len(r.bookings), r.path)
}

// save writes the snapshot file atomically (temp file plus rename).
// Failure is a non-fatal warning; the in-memory state stands.
func (r *Repository) save() {
	data, err := json.MarshalIndent(snapshot{Bookings: r.bookings}, "", "  ")
	if err != nil {
		r.log.Warn("booking store: failed to encode snapshot: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		r.log.Warn("booking store: failed to create snapshot directory: %v", err)
		return
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		r.log.Warn("booking store: failed to write snapshot, in-memory state stands: %v", err)
		return
	}
	if err := os.Rename(tmp, r.path); err != nil {
		r.log.Warn("booking store: failed to replace snapshot, in-memory state stands: %v", err)
	}
}

func copyBookings(in []*domain.Booking) []*domain.Booking {
	out := make([]*domain.Booking, len(in))
	for i, b := range in {
		c := *b
		out[i] = &c
	}
	return out
}
