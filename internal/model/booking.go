package model

// Booking records a single visitor's reservation for one exhibition
// time slot.  Bookings are created through the lifecycle controller
// and persisted as a JSON array under the "bookings" blob key.
//
// Fields:
//  ID       – opaque unique identifier, assigned at creation.
//  Date     – calendar date in YYYY-MM-DD form; one of the fixed
//             exhibition dates, never changed after creation.
//  Time     – half-hour slot label in HH:mm form; fixed after creation.
//  Name     – visitor display name, non-empty after trimming.
//  Message  – optional note, visible only to the administrator and to
//             the author after password verification.
//  Password – plaintext credential required to edit or delete the
//             booking.  Stored and compared as-is, exact equality,
//             case-sensitive.
type Booking struct {
	ID       string `json:"id"`       // unique booking identifier
	Date     string `json:"date"`     // YYYY-MM-DD
	Time     string `json:"time"`     // HH:mm
	Name     string `json:"name"`     // visitor name
	Message  string `json:"message"`  // guestbook message (admin-only)
	Password string `json:"password"` // plaintext edit/delete credential
}

// PublicBooking is the redacted view of a booking returned to
// unauthenticated callers.  Message and password never leave the
// server through this shape.
type PublicBooking struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`
	Name string `json:"name"`
}

// Public returns the redacted view of b.
func (b Booking) Public() PublicBooking {
	return PublicBooking{ID: b.ID, Date: b.Date, Time: b.Time, Name: b.Name}
}

// AdminBooking is the elevated view returned to an authenticated
// administrator.  It exposes the message but still withholds the
// visitor's password.
type AdminBooking struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Admin returns the elevated view of b.
func (b Booking) Admin() AdminBooking {
	return AdminBooking{ID: b.ID, Date: b.Date, Time: b.Time, Name: b.Name, Message: b.Message}
}
