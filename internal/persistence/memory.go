package persistence

import (
	"context"
	"sync"
)

// MemoryGateway is an in-process Gateway used by tests and ephemeral runs.
type MemoryGateway struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{blobs: make(map[string][]byte)}
}

func (g *MemoryGateway) Put(_ context.Context, key string, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	g.blobs[key] = stored
	return nil
}

func (g *MemoryGateway) PutAll(_ context.Context, blobs map[string][]byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for key, data := range blobs {
		stored := make([]byte, len(data))
		copy(stored, data)
		g.blobs[key] = stored
	}
	return nil
}

func (g *MemoryGateway) Get(_ context.Context, key string) ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	data, ok := g.blobs[key]
	if !ok {
		return nil, nil
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
