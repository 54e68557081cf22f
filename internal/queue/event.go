// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingChangedEvent is published whenever the booking collection is
// mutated.  It contains enough information for downstream consumers to
// log or notify without reading the blob store.  The guestbook message
// and password are deliberately absent: events may be consumed outside
// the admin trust boundary.
type BookingChangedEvent struct {
	Action     string `json:"action"` // "created", "updated" or "deleted"
	BookingID  string `json:"booking_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Name       string `json:"name"`
	OccurredAt string `json:"occurred_at"` // RFC3339 UTC
}
