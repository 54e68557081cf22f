package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/exhibition-visit-booking/internal/calendar"
	"github.com/iliyamo/exhibition-visit-booking/internal/model"
	"github.com/iliyamo/exhibition-visit-booking/internal/store"
)

// ScheduleHandler serves the read side of the calendar: the full grid
// and individual slots.  Responses are always redacted: visitor names
// only, never messages or passwords.  The admin grid lives under the
// guarded /v1/admin routes.
type ScheduleHandler struct {
	Store *store.BookingStore
}

// NewScheduleHandler constructs a ScheduleHandler.  The store must be
// non-nil.
func NewScheduleHandler(st *store.BookingStore) *ScheduleHandler {
	if st == nil {
		panic("nil store passed to NewScheduleHandler")
	}
	return &ScheduleHandler{Store: st}
}

// slotView is one cell of the calendar grid: occupancy rendered as
// count against capacity, plus the visitor names.
type slotView struct {
	Time     string                `json:"time"`
	Count    int                   `json:"count"`
	Capacity int                   `json:"capacity"`
	Full     bool                  `json:"full"`
	Bookings []model.PublicBooking `json:"bookings"`
}

type dayView struct {
	Date  string     `json:"date"`
	Slots []slotView `json:"slots"`
}

// Schedule handles GET /v1/schedule.  It returns every exhibition day
// with all sixteen slots, each carrying its occupancy and the redacted
// bookings in insertion order.
func (h *ScheduleHandler) Schedule(c echo.Context) error {
	days := make([]dayView, 0, len(calendar.Dates))
	for _, date := range calendar.Dates {
		day := dayView{Date: date, Slots: make([]slotView, 0, len(calendar.TimeSlots))}
		for _, t := range calendar.TimeSlots {
			day.Slots = append(day.Slots, h.slot(date, t))
		}
		days = append(days, day)
	}
	return c.JSON(http.StatusOK, echo.Map{"days": days, "capacity": calendar.MaxBookingsPerSlot})
}

// Slot handles GET /v1/slots/:date/:time.  It returns one cell of the
// grid, or 404 for a (date, time) pair that is not on the calendar.
func (h *ScheduleHandler) Slot(c echo.Context) error {
	date, t := c.Param("date"), c.Param("time")
	if !calendar.ValidSlot(date, t) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown slot"})
	}
	return c.JSON(http.StatusOK, echo.Map{"slot": h.slot(date, t)})
}

func (h *ScheduleHandler) slot(date, t string) slotView {
	bookings := h.Store.BookingsFor(date, t)
	public := make([]model.PublicBooking, 0, len(bookings))
	for _, b := range bookings {
		public = append(public, b.Public())
	}
	return slotView{
		Time:     t,
		Count:    len(bookings),
		Capacity: calendar.MaxBookingsPerSlot,
		Full:     len(bookings) >= calendar.MaxBookingsPerSlot,
		Bookings: public,
	}
}
