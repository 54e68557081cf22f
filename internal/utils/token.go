package utils // package utils provides helpers for admin token creation

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminToken represents a signed JWT handed to the administrator after
// a successful login.  The Token field contains the JWT string and Exp
// its expiration.  The token only proves which caller performed the
// login; the process-wide admin session flag remains the authority on
// whether the administrator is logged in.
type AdminToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAdminToken builds and signs an HS256 JWT for the administrator.
// It takes the signing secret and a TTL in minutes.  The JWT carries
// the standard claims: subject (sub), role, expiration (exp) and
// issued at (iat).
func NewAdminToken(secret string, ttlMin int) (AdminToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "ADMIN",
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AdminToken{}, err
	}
	return AdminToken{Token: signed, Exp: exp}, nil
}
