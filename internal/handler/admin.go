package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/exhibition-visit-booking/internal/booking"
	"github.com/iliyamo/exhibition-visit-booking/internal/config"
	"github.com/iliyamo/exhibition-visit-booking/internal/model"
	"github.com/iliyamo/exhibition-visit-booking/internal/store"
	"github.com/iliyamo/exhibition-visit-booking/internal/utils"
)

// AdminHandler bundles dependencies for the administrator surface:
// login/logout and the elevated booking list with guestbook messages.
type AdminHandler struct {
	Cfg     config.Config
	Session *booking.AdminSession
	Store   *store.BookingStore
}

// NewAdminHandler constructs an AdminHandler.  All dependencies must
// be non-nil.
func NewAdminHandler(cfg config.Config, session *booking.AdminSession, st *store.BookingStore) *AdminHandler {
	if session == nil || st == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{Cfg: cfg, Session: session, Store: st}
}

type adminLoginReq struct {
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Login handles POST /v1/admin/login.  An exact match against the
// configured credential flips the process-wide session to
// authenticated and returns a bearer token for the admin routes.  On
// mismatch the session is left untouched; there is no lockout and no
// rate limit.
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !h.Session.Login(req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	token, err := utils.NewAdminToken(h.Cfg.JWTSecret, h.Cfg.AdminTokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access": tokenPart{Token: token.Token, Expires: token.Exp},
	})
}

// Logout handles POST /v1/admin/logout.  It unconditionally clears the
// session; outstanding tokens become useless because the middleware
// checks the live session flag.
func (h *AdminHandler) Logout(c echo.Context) error {
	h.Session.Logout()
	return c.NoContent(http.StatusNoContent)
}

// ListBookings handles GET /v1/admin/bookings.  It returns every
// booking with its guestbook message, in store order.  Passwords still
// never leave the server.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	bookings := h.Store.List()
	items := make([]model.AdminBooking, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, b.Admin())
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
