package scanner

import (
	"context"
	"testing"
	"time"

	"instock/pkg/metadata"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestScanner(cfg Config) (*Scanner, *time.Time) {
	s := New(cfg, zap.NewNop())
	clock := time.Date(2023, 3, 6, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	return s, &clock
}

func TestScanAcceptsValidCode(t *testing.T) {
	s, _ := newTestScanner(Config{})

	symbology, err := s.Scan("4603934000274")
	assert.NoError(t, err)
	assert.Equal(t, metadata.SymbologyEAN13, symbology)
}

func TestScanDebounce(t *testing.T) {
	s, clock := newTestScanner(Config{})

	_, err := s.Scan("4603934000274")
	assert.NoError(t, err)

	// one second later: inside the window, dropped
	*clock = clock.Add(time.Second)
	_, err = s.Scan("4870007380032")
	assert.ErrorIs(t, err, ErrDebounced)

	// two seconds after the accepted scan: allowed again
	*clock = clock.Add(time.Second)
	symbology, err := s.Scan("4870007380032")
	assert.NoError(t, err)
	assert.Equal(t, metadata.SymbologyEAN13, symbology)
}

func TestDebouncedScanDoesNotResetWindow(t *testing.T) {
	s, clock := newTestScanner(Config{})

	_, err := s.Scan("4603934000274")
	assert.NoError(t, err)

	// rejected scans must not push the window forward
	*clock = clock.Add(1900 * time.Millisecond)
	_, err = s.Scan("4603934000274")
	assert.ErrorIs(t, err, ErrDebounced)

	*clock = clock.Add(100 * time.Millisecond)
	_, err = s.Scan("4603934000274")
	assert.NoError(t, err)
}

func TestScanRejectsMalformedAndUnsupported(t *testing.T) {
	s, _ := newTestScanner(Config{
		Symbologies: []metadata.Symbology{metadata.SymbologyEAN13},
	})

	_, err := s.Scan("not-a-barcode")
	assert.Error(t, err)

	// valid EAN-8, but the configured set only accepts EAN-13
	_, err = s.Scan("96385074")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrDebounced)
}

func TestStreamDeliversAcceptedScans(t *testing.T) {
	s, clock := newTestScanner(Config{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := s.Stream(ctx)

	_, err := s.Scan("4603934000274")
	assert.NoError(t, err)

	select {
	case code := <-stream:
		assert.Equal(t, "4603934000274", code)
	case <-time.After(time.Second):
		t.Fatal("expected a code on the stream")
	}

	// debounced scans never reach the stream
	*clock = clock.Add(time.Second)
	_, err = s.Scan("4870007380032")
	assert.ErrorIs(t, err, ErrDebounced)

	select {
	case code := <-stream:
		t.Fatalf("unexpected code on stream: %s", code)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	_, open := <-stream
	assert.False(t, open, "stream closes when the context is done")
}
