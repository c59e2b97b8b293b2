package persistence

import (
	"context"
)

// Snapshot keys. Each key holds a whole-collection JSON array; there are no
// partial updates and no schema versioning.
const (
	KeyStock    = "Stock"
	KeyShipment = "Shipment"
	KeyCatalog  = "Catalog"
)

// Gateway is the opaque blob store behind the warehouse state. Get returns
// nil data (and no error) when the key has never been written.
type Gateway interface {
	Put(ctx context.Context, key string, data []byte) error
	// PutAll writes several snapshots as one atomic action. Mutations that
	// touch both the shipment log and the stock ledger persist through it so
	// the two collections cannot drift on a partial write.
	PutAll(ctx context.Context, blobs map[string][]byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
