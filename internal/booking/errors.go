// Package booking implements the reservation lifecycle: validated
// create, password-gated edit and reveal, the two-phase delete flow
// and the administrator session.  These sentinel values let the HTTP
// layer map each rejection to a status code without string matching.
package booking

import "errors"

// ErrMissingName is returned when the visitor name is empty after
// trimming whitespace.  Handlers translate it into HTTP 400.
var ErrMissingName = errors.New("missing name")

// ErrMissingPassword is returned when a booking is created without a
// password.  Handlers translate it into HTTP 400.
var ErrMissingPassword = errors.New("missing password")

// ErrUnknownSlot is returned when the requested (date, time) pair is
// not on the exhibition calendar.  Handlers translate it into HTTP 400.
var ErrUnknownSlot = errors.New("unknown slot")

// ErrSlotFull is returned when a create would exceed the per-slot
// capacity.  The store is left unchanged.  Handlers translate it into
// HTTP 409.
var ErrSlotFull = errors.New("slot full")

// ErrPasswordMismatch is returned when the submitted password does not
// exactly match the booking's stored password.  The store is never
// mutated and the message is never revealed on mismatch.  Handlers
// translate it into HTTP 401.
var ErrPasswordMismatch = errors.New("password mismatch")

// ErrBookingNotFound is returned when no booking has the given id.
// Handlers translate it into HTTP 404.
var ErrBookingNotFound = errors.New("booking not found")

// ErrNoStagedDelete is returned when a delete confirmation arrives
// with nothing staged.  Handlers translate it into HTTP 409.
var ErrNoStagedDelete = errors.New("no staged delete")
