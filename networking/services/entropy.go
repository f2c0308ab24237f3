package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fernandosanchezjr/fastrng/random"
	log "github.com/sirupsen/logrus"
)

// MaxFill bounds a single Fill request.
const MaxFill = 1 << 20

var (
	ErrBadFillSize = errors.New("fill size out of range")
	ErrNoSource    = errors.New("entropy service has no source")
)

// Entropy serves bytes from one shared source. Requests are serialized, so
// concurrent clients each see a contiguous slice of the stream.
type Entropy struct {
	mu     sync.Mutex
	src    random.Source
	served uint64
}

func NewEntropy(src random.Source) *Entropy {
	return &Entropy{src: src}
}

func (e *Entropy) Fill(n int) ([]byte, error) {
	if n < 0 || n > MaxFill {
		return nil, fmt.Errorf("%w: %d", ErrBadFillSize, n)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.src == nil {
		return nil, ErrNoSource
	}
	buf := make([]byte, n)
	if err := e.src.TryFillBytes(buf); err != nil {
		log.WithError(err).Error("Entropy source failed")
		return nil, err
	}
	e.served += uint64(n)
	return buf, nil
}

// Served returns the number of bytes handed out so far.
func (e *Entropy) Served() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.served
}
