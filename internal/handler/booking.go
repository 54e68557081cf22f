package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/exhibition-visit-booking/internal/booking"
	"github.com/iliyamo/exhibition-visit-booking/internal/model"
	"github.com/iliyamo/exhibition-visit-booking/internal/queue"
	queue_publisher "github.com/iliyamo/exhibition-visit-booking/internal/service"
)

// BookingHandler exposes the booking lifecycle over HTTP.  Every
// endpoint maps one visitor intent: reserve, verify password, edit,
// and the two-phase delete.  Rejections are
// returned synchronously in the triggering response; nothing is
// retried in the background.
type BookingHandler struct {
	Controller    *booking.Controller
	EventsEnabled bool
}

// NewBookingHandler constructs a BookingHandler.  The controller must
// be non-nil.
func NewBookingHandler(ctrl *booking.Controller, eventsEnabled bool) *BookingHandler {
	if ctrl == nil {
		panic("nil controller passed to NewBookingHandler")
	}
	return &BookingHandler{Controller: ctrl, EventsEnabled: eventsEnabled}
}

// ----- DTOs -----

type createReq struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Name     string `json:"name"`
	Message  string `json:"message"`
	Password string `json:"password"`
}

type passwordReq struct {
	Password string `json:"password"`
}

type updateReq struct {
	Name     string `json:"name"`
	Message  string `json:"message"`
	Password string `json:"password"`
}

// Create handles POST /v1/bookings.  It validates the reserve intent
// and appends a new booking.  A full slot yields 409 and leaves the
// store untouched.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b, err := h.Controller.Create(c.Request().Context(), req.Date, req.Time, req.Name, req.Message, req.Password)
	if err != nil {
		return rejection(c, err)
	}
	h.publish("created", b)
	return c.JSON(http.StatusCreated, echo.Map{"booking": b.Public()})
}

// Reveal handles POST /v1/bookings/:id/reveal, the password
// verification step that unlocks the stored message for editing.  With
// the admin session authenticated no password is needed.
func (h *BookingHandler) Reveal(c echo.Context) error {
	var req passwordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b, err := h.Controller.Reveal(c.Param("id"), req.Password)
	if err != nil {
		return rejection(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": b.Admin()})
}

// Update handles PUT /v1/bookings/:id.  Name and message are the only
// editable fields; date, time and password never change.  The password
// is re-validated on submit unless the admin session is authenticated.
func (h *BookingHandler) Update(c echo.Context) error {
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b, err := h.Controller.Update(c.Request().Context(), c.Param("id"), req.Name, req.Message, req.Password)
	if err != nil {
		return rejection(c, err)
	}
	h.publish("updated", b)
	return c.JSON(http.StatusOK, echo.Map{"booking": b.Public()})
}

// StageDelete handles POST /v1/bookings/:id/delete, phase one of the
// destructive flow.  The password is checked up front; on mismatch the
// confirmation step is never offered.
func (h *BookingHandler) StageDelete(c echo.Context) error {
	var req passwordReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := h.Controller.StageDelete(c.Param("id"), req.Password); err != nil {
		return rejection(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"staged": c.Param("id")})
}

// ConfirmDelete handles POST /v1/bookings/:id/delete/confirm, phase
// two.  The id must match the staged intent; a confirmation for a
// different booking is refused and the stage survives.
func (h *BookingHandler) ConfirmDelete(c echo.Context) error {
	if staged, ok := h.Controller.Staged(); !ok || staged != c.Param("id") {
		return c.JSON(http.StatusConflict, echo.Map{"error": booking.ErrNoStagedDelete.Error()})
	}
	removed, err := h.Controller.ConfirmDelete(c.Request().Context())
	if err != nil {
		return rejection(c, err)
	}
	h.publish("deleted", removed)
	return c.NoContent(http.StatusNoContent)
}

// CancelDelete handles POST /v1/bookings/:id/delete/cancel.  Only a
// stage for the booking in the path is discarded; a stage for another
// booking survives.  Cancelling when nothing is staged is also fine.
func (h *BookingHandler) CancelDelete(c echo.Context) error {
	h.Controller.CancelDelete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// publish emits a booking change event when events are enabled.  The
// publish happens off the request path and failures are already logged
// by the publisher; a lost event never fails the user's action.
func (h *BookingHandler) publish(action string, b model.Booking) {
	if !h.EventsEnabled {
		return
	}
	ev := queue.BookingChangedEvent{
		Action:     action,
		BookingID:  b.ID,
		Date:       b.Date,
		Time:       b.Time,
		Name:       b.Name,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue_publisher.PublishBookingChanged(ctx, ev)
	}()
}

// rejection maps a controller error to its HTTP status.  Every
// rejection is surfaced in the response to the triggering action.
func rejection(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, booking.ErrMissingName),
		errors.Is(err, booking.ErrMissingPassword),
		errors.Is(err, booking.ErrUnknownSlot):
		status = http.StatusBadRequest
	case errors.Is(err, booking.ErrPasswordMismatch):
		status = http.StatusUnauthorized
	case errors.Is(err, booking.ErrBookingNotFound):
		status = http.StatusNotFound
	case errors.Is(err, booking.ErrSlotFull),
		errors.Is(err, booking.ErrNoStagedDelete):
		status = http.StatusConflict
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
