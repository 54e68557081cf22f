package booking

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/iliyamo/exhibition-visit-booking/internal/calendar"
	"github.com/iliyamo/exhibition-visit-booking/internal/model"
	"github.com/iliyamo/exhibition-visit-booking/internal/store"
)

// stagedDelete is the transient intent produced by the first phase of
// a delete: the password has been verified but the visitor has not yet
// confirmed.  It lives only in memory and is cleared on cancel,
// confirmation or replacement by a newer stage.
type stagedDelete struct {
	bookingID        string
	verifiedPassword string
}

// Controller validates and applies booking intents against the store.
// It is the store's sole writer.  The admin session is consulted for
// the edit/reveal bypass; delete stays password-gated for every
// caller, the admin included.
type Controller struct {
	store *store.BookingStore
	admin *AdminSession

	mu     sync.Mutex
	staged *stagedDelete
}

// NewController wires the controller to its store and admin session.
func NewController(st *store.BookingStore, admin *AdminSession) *Controller {
	if st == nil || admin == nil {
		panic("nil dependency passed to NewController")
	}
	return &Controller{store: st, admin: admin}
}

// Create validates a reserve intent and appends a new booking.  Name
// and message are trimmed; the password is kept verbatim because it is
// compared verbatim later.  The slot must exist on the calendar and
// must not be at capacity.
func (c *Controller) Create(ctx context.Context, date, t, name, message, password string) (model.Booking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Booking{}, ErrMissingName
	}
	if password == "" {
		return model.Booking{}, ErrMissingPassword
	}
	if !calendar.ValidSlot(date, t) {
		return model.Booking{}, ErrUnknownSlot
	}
	b := model.Booking{
		ID:       uuid.NewString(),
		Date:     date,
		Time:     t,
		Name:     name,
		Message:  strings.TrimSpace(message),
		Password: password,
	}
	// The capacity check and the append are one atomic store operation;
	// checking IsFull here first would let two concurrent creates on a
	// slot at capacity minus one both pass.
	if !c.store.AddIfNotFull(ctx, b) {
		return model.Booking{}, ErrSlotFull
	}
	return b, nil
}

// Reveal returns the full booking, message included, once the caller
// is entitled to see it: the admin session bypasses the check, anyone
// else must present the booking's exact password.  On mismatch nothing
// is revealed.
func (c *Controller) Reveal(id, password string) (model.Booking, error) {
	b, ok := c.store.Get(id)
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	if c.admin.Authenticated() {
		return b, nil
	}
	if password != b.Password {
		return model.Booking{}, ErrPasswordMismatch
	}
	return b, nil
}

// Update applies an edit intent to name and message.  Date, time, id
// and password are immutable.  The admin session bypasses the password
// check; otherwise the submitted password is re-validated even when
// the caller already passed a Reveal, so a stale verification can
// never authorize a write.  Which fields a given caller may edit is
// presentation policy, not enforced here.
func (c *Controller) Update(ctx context.Context, id, name, message, password string) (model.Booking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Booking{}, ErrMissingName
	}
	b, ok := c.store.Get(id)
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	if !c.admin.Authenticated() && password != b.Password {
		return model.Booking{}, ErrPasswordMismatch
	}
	// The booking can vanish between the password check and the write
	// when a concurrent delete lands first; surface that instead of
	// returning a zero booking.
	updated, ok := c.store.Replace(ctx, id, name, strings.TrimSpace(message))
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}

// StageDelete is phase one of the destructive flow: it validates the
// password and stages the delete without touching the store.  A stage
// for another booking is replaced; the newest intent wins.
func (c *Controller) StageDelete(id, password string) error {
	b, ok := c.store.Get(id)
	if !ok {
		return ErrBookingNotFound
	}
	if password != b.Password {
		return ErrPasswordMismatch
	}
	c.mu.Lock()
	c.staged = &stagedDelete{bookingID: id, verifiedPassword: password}
	c.mu.Unlock()
	return nil
}

// Staged reports the id of the currently staged delete, if any.
func (c *Controller) Staged() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		return "", false
	}
	return c.staged.bookingID, true
}

// ConfirmDelete is phase two: it executes the staged delete.  The
// password is validated again against the live booking in case the
// store changed between phases.  The stage is consumed either way.
func (c *Controller) ConfirmDelete(ctx context.Context) (model.Booking, error) {
	c.mu.Lock()
	staged := c.staged
	c.staged = nil
	c.mu.Unlock()
	if staged == nil {
		return model.Booking{}, ErrNoStagedDelete
	}
	b, ok := c.store.Get(staged.bookingID)
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	if staged.verifiedPassword != b.Password {
		return model.Booking{}, ErrPasswordMismatch
	}
	c.store.Remove(ctx, staged.bookingID)
	return b, nil
}

// CancelDelete discards the staged delete for the given booking with
// no side effect on the store.  A stage for a different booking is
// left alone; cancelling when nothing is staged is a no-op.
func (c *Controller) CancelDelete(id string) {
	c.mu.Lock()
	if c.staged != nil && c.staged.bookingID == id {
		c.staged = nil
	}
	c.mu.Unlock()
}
