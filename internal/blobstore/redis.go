package blobstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores the blob as a plain string value under Key.  The client
// is constructed in internal/config from the usual REDIS_* variables.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an already-connected Redis client.
func NewRedis(client *redis.Client) *Redis { return &Redis{client: client} }

// Load fetches the blob; a missing key maps to ErrNotFound.
func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	data, err := r.client.Get(ctx, Key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", Key, err)
	}
	return data, nil
}

// Save overwrites the blob with no expiry; the collection lives as
// long as the exhibition does.
func (r *Redis) Save(ctx context.Context, data []byte) error {
	if err := r.client.Set(ctx, Key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", Key, err)
	}
	return nil
}
