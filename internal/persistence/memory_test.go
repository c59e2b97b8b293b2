package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryGatewayRoundTrip(t *testing.T) {
	gateway := NewMemoryGateway()
	ctx := context.Background()

	data, err := gateway.Get(ctx, KeyCatalog)
	assert.NoError(t, err)
	assert.Nil(t, data, "unwritten key reads as no prior data")

	payload := []byte(`[{"name":"test"}]`)
	assert.NoError(t, gateway.Put(ctx, KeyCatalog, payload))

	data, err = gateway.Get(ctx, KeyCatalog)
	assert.NoError(t, err)
	assert.Equal(t, payload, data)

	// overwrite is wholesale
	assert.NoError(t, gateway.Put(ctx, KeyCatalog, []byte(`[]`)))
	data, err = gateway.Get(ctx, KeyCatalog)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestMemoryGatewayCopiesData(t *testing.T) {
	gateway := NewMemoryGateway()
	ctx := context.Background()

	payload := []byte(`[1,2,3]`)
	assert.NoError(t, gateway.Put(ctx, KeyStock, payload))
	payload[0] = 'x'

	data, err := gateway.Get(ctx, KeyStock)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), data)
}
