package domain

import "context"

// Persisted collection keys. Each key holds one JSON blob: an array for
// collections, an object for the current session.
const (
	KeyArtists  = "artistly_artists"
	KeyBookings = "artistly_bookings"
	KeyUsers    = "artistly_users"
	KeySession  = "artistly_user"
)

// Store is a key-value store of raw blobs addressed by string key.
// Implementations: in-memory, file directory, Redis, Postgres.
type Store interface {
	// Get returns ErrKeyNotFound when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value; the last writer wins.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Update atomically replaces the value with fn(current). current is nil when
	// the key is absent. If fn returns an error nothing is written and Update
	// returns that error unchanged.
	Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error
}

// Record is anything stored in a collection under a unique identifier.
type Record interface {
	RecordID() string
}
