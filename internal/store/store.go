// Package store owns the in-memory booking collection and keeps it
// synchronized with the blob store.  The collection is an ordered
// slice; insertion order is the display order and is preserved across
// persistence round trips.  All access goes through a mutex so the
// HTTP layer can call in from concurrent requests.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/iliyamo/exhibition-visit-booking/internal/blobstore"
	"github.com/iliyamo/exhibition-visit-booking/internal/calendar"
	"github.com/iliyamo/exhibition-visit-booking/internal/model"
)

// BookingStore holds the live booking collection.  It is the only
// shared mutable state in the service; the lifecycle controller is its
// sole writer.
type BookingStore struct {
	mu       sync.RWMutex
	blobs    blobstore.Store
	bookings []model.Booking
}

// New returns an empty store bound to the given blob backend.  Call
// Hydrate before serving requests.
func New(blobs blobstore.Store) *BookingStore {
	return &BookingStore{blobs: blobs, bookings: []model.Booking{}}
}

// Hydrate loads the persisted collection.  A missing or malformed blob
// fails soft: the store starts empty and the problem is logged, never
// surfaced to the caller.
func (s *BookingStore) Hydrate(ctx context.Context) {
	data, err := s.blobs.Load(ctx)
	if err != nil {
		if !errors.Is(err, blobstore.ErrNotFound) {
			log.Printf("store: load bookings failed, starting empty: %v", err)
		}
		return
	}
	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("store: malformed bookings blob, starting empty: %v", err)
		return
	}
	s.mu.Lock()
	s.bookings = bookings
	s.mu.Unlock()
}

// List returns a snapshot copy of the collection in store order.
func (s *BookingStore) List() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Get returns the booking with the given id.
func (s *BookingStore) Get(id string) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// Add appends a booking and persists the collection.
func (s *BookingStore) Add(ctx context.Context, b model.Booking) {
	s.mu.Lock()
	s.bookings = append(s.bookings, b)
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// AddIfNotFull appends a booking only while its slot is below
// capacity.  The occupancy check and the append happen under the same
// write lock, so concurrent creates on a slot at capacity minus one
// cannot both slip through.  It reports whether the booking was added.
func (s *BookingStore) AddIfNotFull(ctx context.Context, b model.Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countLocked(b.Date, b.Time) >= calendar.MaxBookingsPerSlot {
		return false
	}
	s.bookings = append(s.bookings, b)
	s.persistLocked(ctx)
	return true
}

// Replace updates the mutable fields of the booking with the given id
// in place, keeping its position, date, time and password.  It returns
// the updated booking and whether the id was found.
func (s *BookingStore) Replace(ctx context.Context, id, name, message string) (model.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Name = name
			s.bookings[i].Message = message
			s.persistLocked(ctx)
			return s.bookings[i], true
		}
	}
	return model.Booking{}, false
}

// Remove deletes the booking with the given id and persists.  It
// reports whether the id was found.
func (s *BookingStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			s.persistLocked(ctx)
			return true
		}
	}
	return false
}

// persistLocked serializes the whole collection and writes it to the
// blob store.  A write failure is logged and otherwise ignored: the
// in-memory state stays authoritative for the rest of the session.
// Callers must hold the write lock.
func (s *BookingStore) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.bookings)
	if err != nil {
		log.Printf("store: marshal bookings failed: %v", err)
		return
	}
	if err := s.blobs.Save(ctx, data); err != nil {
		log.Printf("store: persist bookings failed: %v", err)
	}
}
