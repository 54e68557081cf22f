// Package calendar holds the fixed exhibition schedule: the four open
// days and the sixteen half-hour visiting slots.  The schedule is part
// of the product, not runtime configuration, so it lives in code.
package calendar

// MaxBookingsPerSlot is the capacity of every (date, time) slot.  The
// fourth create attempt against a slot must be rejected.
const MaxBookingsPerSlot = 3

// Dates are the exhibition open days in YYYY-MM-DD form, in display
// order.
var Dates = []string{
	"2025-11-29",
	"2025-11-30",
	"2025-12-01",
	"2025-12-02",
}

// TimeSlots are the half-hour slot labels from 10:00 to 17:30, in
// display order.
var TimeSlots = []string{
	"10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30",
}

// ValidDate reports whether date is one of the exhibition open days.
func ValidDate(date string) bool {
	for _, d := range Dates {
		if d == date {
			return true
		}
	}
	return false
}

// ValidTime reports whether t is one of the visiting slot labels.
func ValidTime(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// ValidSlot reports whether (date, t) names a real slot on the
// exhibition calendar.
func ValidSlot(date, t string) bool {
	return ValidDate(date) && ValidTime(t)
}
