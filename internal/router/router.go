package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/exhibition-visit-booking/internal/booking"
	"github.com/iliyamo/exhibition-visit-booking/internal/handler"
	"github.com/iliyamo/exhibition-visit-booking/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication
// on the provided Echo instance.  Currently it exposes only a health
// check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterSchedule registers the public read side of the calendar:
// the full grid and single-slot lookups.  No authentication; guests
// browse the schedule before reserving.
func RegisterSchedule(e *echo.Echo, s *handler.ScheduleHandler) {
	e.GET("/v1/schedule", s.Schedule)
	e.GET("/v1/slots/:date/:time", s.Slot)
}

// RegisterBookings registers the booking lifecycle intents.  These are
// public too; each mutating intent authenticates itself with the
// booking's own password (or the live admin session), so no middleware
// is applied here.
func RegisterBookings(e *echo.Echo, b *handler.BookingHandler) {
	g := e.Group("/v1/bookings")
	// Reserve a slot.
	g.POST("", b.Create)
	// Password verification step: unlocks the stored message for editing.
	g.POST("/:id/reveal", b.Reveal)
	// Edit name and message; date, time and password are immutable.
	g.PUT("/:id", b.Update)
	// Two-phase delete: stage validates the password, confirm executes,
	// cancel discards the staged intent with no side effect.
	g.POST("/:id/delete", b.StageDelete)
	g.POST("/:id/delete/confirm", b.ConfirmDelete)
	g.POST("/:id/delete/cancel", b.CancelDelete)
}

// RegisterAdmin registers the administrator surface.  Login is open;
// everything else requires the bearer token issued at login AND a
// still-authenticated session, enforced by the AdminAuth middleware.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string, session *booking.AdminSession) {
	e.POST("/v1/admin/login", a.Login)

	g := e.Group("/v1/admin")
	g.Use(middleware.AdminAuth(jwtSecret, session))
	g.POST("/logout", a.Logout)
	g.GET("/bookings", a.ListBookings)
}
