package services

import (
	"context"
	"errors"

	"frontdesk-backend/storage"
)

// failingGateway rejects writes while fail is set, to exercise the
// rollback path of the write-through services.
type failingGateway struct {
	*storage.MemoryStore
	fail bool
}

func newFailingGateway() *failingGateway {
	return &failingGateway{MemoryStore: storage.NewMemoryStore()}
}

func (g *failingGateway) Set(ctx context.Context, key string, blob []byte) error {
	if g.fail {
		return errors.New("disk full")
	}
	return g.MemoryStore.Set(ctx, key, blob)
}
