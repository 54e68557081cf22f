package store

import (
	"github.com/iliyamo/exhibition-visit-booking/internal/calendar"
	"github.com/iliyamo/exhibition-visit-booking/internal/model"
)

// The slot index is a derived view over the booking collection.  It
// carries no state of its own: every query walks the live collection
// under the read lock, so it can never disagree with the store.

// BookingsFor returns the bookings whose date and time exactly match,
// in store order.
func (s *BookingStore) BookingsFor(date, t string) []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Booking{}
	for _, b := range s.bookings {
		if b.Date == date && b.Time == t {
			out = append(out, b)
		}
	}
	return out
}

// CountFor returns the occupancy of the (date, time) slot.
func (s *BookingStore) CountFor(date, t string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countLocked(date, t)
}

// countLocked walks the collection without taking the lock.  Callers
// must hold it, read or write.
func (s *BookingStore) countLocked(date, t string) int {
	n := 0
	for _, b := range s.bookings {
		if b.Date == date && b.Time == t {
			n++
		}
	}
	return n
}

// IsFull reports whether the slot has reached capacity.
func (s *BookingStore) IsFull(date, t string) bool {
	return s.CountFor(date, t) >= calendar.MaxBookingsPerSlot
}
