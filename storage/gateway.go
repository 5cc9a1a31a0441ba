package storage

import "context"

// Keys of the three persisted collections.
const (
	KeyRooms    = "hotel:rooms"
	KeyBookings = "hotel:bookings"
	KeyUI       = "hotel:ui"
)

// Gateway is the persistence collaborator: a key-value store of opaque
// blobs. The engine encodes each collection as one JSON blob per key.
type Gateway interface {
	// Get returns the blob stored under key. found is false when the key
	// is absent; err is reserved for store failures.
	Get(ctx context.Context, key string) (blob []byte, found bool, err error)
	Set(ctx context.Context, key string, blob []byte) error
}
