// Package session provides short-lived storage for submitted patient
// records. Records are kept only long enough for a follow-up analysis or
// report request to reference them by ID; nothing is persisted beyond the
// configured TTL.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key is absent or has expired.
var ErrNotFound = errors.New("session: not found")

// Store is a TTL-bounded key/value store. Values are opaque bytes; callers
// own serialization.
type Store interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Keys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// Config holds settings shared by all store backends.
type Config struct {
	TTL time.Duration
}
