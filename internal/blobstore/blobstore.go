// Package blobstore abstracts the persistence medium for the booking
// collection.  The service treats storage as an opaque key-value blob:
// the whole collection is serialized and written under a single key on
// every mutation, and read back once at startup.  Backends exist for a
// JSON file on disk (the default), Redis, MySQL and an in-memory store
// used by tests.
package blobstore

import (
	"context"
	"errors"
)

// Key is the single blob key under which the booking collection lives.
const Key = "bookings"

// ErrNotFound is returned by Load when no blob has been written yet.
// Callers treat it as an empty collection, never as a failure.
var ErrNotFound = errors.New("blob not found")

// Store is the contract every backend satisfies.  Load returns the raw
// serialized collection or ErrNotFound.  Save overwrites the blob
// atomically from the caller's point of view.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
