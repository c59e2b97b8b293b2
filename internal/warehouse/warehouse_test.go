package warehouse

import (
	"context"
	"errors"
	"sync"
)

// failingGateway implements persistence.Gateway and starts rejecting writes
// once fail is set, for persist-then-commit tests.
type failingGateway struct {
	mu    sync.Mutex
	fail  bool
	blobs map[string][]byte
}

func (g *failingGateway) Put(_ context.Context, key string, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.fail {
		return errors.New("gateway unavailable")
	}
	if g.blobs == nil {
		g.blobs = make(map[string][]byte)
	}
	g.blobs[key] = data
	return nil
}

func (g *failingGateway) PutAll(ctx context.Context, blobs map[string][]byte) error {
	for key, data := range blobs {
		if err := g.Put(ctx, key, data); err != nil {
			return err
		}
	}
	return nil
}

func (g *failingGateway) Get(_ context.Context, key string) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.blobs[key], nil
}
