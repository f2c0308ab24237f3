// Package sources holds random.Source implementations other than pcg.FastRng:
// the gonum generators, the OS entropy pool, plain readers and a few
// deterministic sources for tests.
package sources

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/fernandosanchezjr/fastrng/pcg"
	"github.com/fernandosanchezjr/fastrng/random"
	"gonum.org/v1/gonum/mathext/prng"
)

const (
	KindPCG     = "pcg"
	KindXoshiro = "xoshiro"
	KindMT      = "mt"
	KindCrypto  = "crypto"
)

var ErrUnknownKind = errors.New("unknown source kind")

var ErrShortRead = errors.New("short read from entropy reader")

// Kinds lists every kind New accepts.
func Kinds() []string {
	return []string{KindPCG, KindXoshiro, KindMT, KindCrypto}
}

// New builds a source by kind. The sequence is only meaningful for pcg;
// crypto ignores both numbers.
func New(kind string, seed, sequence uint64) (random.Source, error) {
	switch kind {
	case KindPCG:
		return pcg.Seed(seed, sequence), nil
	case KindXoshiro:
		return Xoshiro(seed), nil
	case KindMT:
		return MT(seed), nil
	case KindCrypto:
		return Crypto(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

type uint64er interface {
	Uint64() uint64
}

// Uint64Source fills bytes from a 64-bit generator, 8 bytes per draw, the
// last draw truncated.
type Uint64Source struct {
	gen uint64er
}

func (s *Uint64Source) TryFillBytes(buf []byte) error {
	var word [8]byte
	for len(buf) >= 8 {
		binary.LittleEndian.PutUint64(buf, s.gen.Uint64())
		buf = buf[8:]
	}
	if len(buf) > 0 {
		binary.LittleEndian.PutUint64(word[:], s.gen.Uint64())
		copy(buf, word[:])
	}
	return nil
}

func Xoshiro(seed uint64) *Uint64Source {
	return &Uint64Source{gen: prng.NewXoshiro256starstar(seed)}
}

func MT(seed uint64) *Uint64Source {
	mt := prng.NewMT19937_64()
	mt.Seed(seed)
	return &Uint64Source{gen: mt}
}

// ReaderSource reads its bytes from an io.Reader. Read errors and short reads
// are reported through TryFillBytes.
type ReaderSource struct {
	r io.Reader
}

func Reader(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

func (s *ReaderSource) TryFillBytes(buf []byte) error {
	if _, err := io.ReadFull(s.r, buf); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return ErrShortRead
		}
		return err
	}
	return nil
}

// Crypto reads from the operating system's entropy pool.
func Crypto() *ReaderSource {
	return Reader(rand.Reader)
}
