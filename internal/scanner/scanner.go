package scanner

import (
	"context"
	"errors"
	"sync"
	"time"

	"instock/pkg/metadata"

	"go.uber.org/zap"
)

// DefaultMinInterval is the capture debounce window:
// at most one accepted code every two seconds.
const DefaultMinInterval = 2 * time.Second

// ErrDebounced marks a scan arriving before the minimum interval elapsed.
// Debounced scans are dropped, not queued.
var ErrDebounced = errors.New("scan dropped by debounce")

type Config struct {
	MinInterval time.Duration
	// Symbologies restricts accepted barcode formats. Empty means the common
	// 1-D retail set (EAN-13, EAN-8, UPC-A, UPC-E).
	Symbologies []metadata.Symbology
}

// Scanner turns raw decoded barcode strings into a rate-limited stream of
// accepted codes. Symbology and check digit are validated first, then the
// debounce window applies to accepted scans only.
type Scanner struct {
	mu          sync.Mutex
	minInterval time.Duration
	accepted    map[metadata.Symbology]bool
	lastScan    time.Time
	subscribers []chan string
	logger      *zap.Logger

	now func() time.Time
}

func New(cfg Config, logger *zap.Logger) *Scanner {
	interval := cfg.MinInterval
	if interval <= 0 {
		interval = DefaultMinInterval
	}

	symbologies := cfg.Symbologies
	if len(symbologies) == 0 {
		symbologies = []metadata.Symbology{
			metadata.SymbologyEAN13,
			metadata.SymbologyEAN8,
			metadata.SymbologyUPCA,
			metadata.SymbologyUPCE,
		}
	}

	accepted := make(map[metadata.Symbology]bool, len(symbologies))
	for _, s := range symbologies {
		accepted[s] = true
	}

	return &Scanner{
		minInterval: interval,
		accepted:    accepted,
		logger:      logger,
		now:         time.Now,
	}
}

// Scan offers a decoded barcode. It returns the detected symbology when the
// code was accepted, ErrDebounced when it arrived too fast, or a validation
// error for malformed or unsupported codes.
func (s *Scanner) Scan(code string) (metadata.Symbology, error) {
	symbology, err := metadata.DetectSymbology(code)
	if err != nil {
		return "", err
	}
	if !s.accepted[symbology] {
		return "", errors.New("symbology " + symbology.String() + " not accepted")
	}

	s.mu.Lock()
	now := s.now()
	if !s.lastScan.IsZero() && now.Sub(s.lastScan) < s.minInterval {
		s.mu.Unlock()
		s.logger.Debug("scan debounced", zap.String("code", code))
		return "", ErrDebounced
	}
	s.lastScan = now
	subscribers := append([]chan string{}, s.subscribers...)
	s.mu.Unlock()

	for _, ch := range subscribers {
		select {
		case ch <- code:
		default:
		}
	}

	return symbology, nil
}

// Stream returns a lazy channel of accepted codes. The channel closes when
// ctx is done; calling Stream again restarts consumption.
func (s *Scanner) Stream(ctx context.Context) <-chan string {
	s.mu.Lock()
	ch := make(chan string, 16)
	s.subscribers = append(s.subscribers, ch)
	s.mu.Unlock()

	out := make(chan string)
	go func() {
		defer close(out)
		defer s.unsubscribe(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case code := <-ch:
				select {
				case out <- code:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (s *Scanner) unsubscribe(ch chan string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.subscribers {
		if sub == ch {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return
		}
	}
}
