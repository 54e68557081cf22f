package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/exhibition-visit-booking/internal/booking"
)

// AdminAuth returns an Echo middleware that guards administrator-only
// routes.  Two conditions must hold: the request carries a valid
// Bearer token issued at login, and the process-wide admin session is
// still authenticated.  The second check keeps the session flag
// authoritative: after a logout an otherwise-valid token is refused,
// and a restart invalidates everything because the default signing
// secret is regenerated per process.
func AdminAuth(secret string, session *booking.AdminSession) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 and our secret; reject any other
			// signing method.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok || claims["role"] != "ADMIN" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			if !session.Authenticated() {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "admin session ended"})
			}
			return next(c)
		}
	}
}
