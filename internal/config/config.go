// Package config loads runtime configuration from environment
// variables.  Everything is defaulted so the service starts with no
// configuration at all: file-backed storage, port 8080 and the
// exhibition's admin credential.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
)

// Config holds all runtime settings.  Business constants (the
// calendar, the slot capacity) are code, not configuration; see
// internal/calendar.
type Config struct {
	Env              string // application environment (e.g. "dev", "prod")
	Port             string // HTTP port to listen on
	AdminPassword    string // admin login credential, compared in plaintext
	JWTSecret        string // secret for admin bearer tokens; random per process when unset
	AdminTokenTTLMin int    // admin token time-to-live in minutes
	StoreBackend     string // "file", "redis", "mysql" or "memory"
	StoreFile        string // blob path for the file backend
	DBUser           string // database username (mysql backend)
	DBPass           string // database password (optional)
	DBHost           string // database host address
	DBPort           string // database port number
	DBName           string // database name
	EventsEnabled    bool   // publish/consume booking events over RabbitMQ
}

// Load reads the environment and returns a fully defaulted Config.
// When JWT_SECRET is unset a random secret is generated, so admin
// tokens issued by one process are worthless to the next; the admin
// session never survives a restart.
func Load() Config {
	return Config{
		Env:              getenv("APP_ENV", "dev"),
		Port:             getenv("APP_PORT", "8080"),
		AdminPassword:    getenv("ADMIN_PASSWORD", "0921"),
		JWTSecret:        getenv("JWT_SECRET", randomSecret()),
		AdminTokenTTLMin: atoi(getenv("ADMIN_TOKEN_TTL_MIN", "720")),
		StoreBackend:     getenv("STORE_BACKEND", "file"),
		StoreFile:        getenv("STORE_FILE", "data/bookings.json"),
		DBUser:           getenv("DB_USER", "root"),
		DBPass:           os.Getenv("DB_PASS"),
		DBHost:           getenv("DB_HOST", "localhost"),
		DBPort:           getenv("DB_PORT", "3306"),
		DBName:           getenv("DB_NAME", "exhibition"),
		EventsEnabled:    getenv("EVENTS_ENABLED", "false") == "true",
	}
}

// getenv returns the value of key or def when unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// atoi converts s, falling back to zero on garbage.
func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

// randomSecret produces a 32-byte hex secret for signing admin tokens
// when none is configured.  crypto/rand never fails on supported
// platforms; a fixed fallback would silently weaken token signing, so
// a failure here is fatal.
func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
