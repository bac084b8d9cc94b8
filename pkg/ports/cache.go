package ports

import (
	"context"
)

// ResultCache stores encoded operation results keyed by request fingerprint.
type ResultCache interface {
	// Get returns the value stored under key.
	// Returns domain.ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
