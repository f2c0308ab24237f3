// Package fixtures captures regression vectors from seeded sources, checks
// them later and keeps them in a bbolt database.
package fixtures

import (
	"errors"
	"fmt"
	"time"

	"github.com/fernandosanchezjr/fastrng/random"
	"github.com/fernandosanchezjr/fastrng/sources"
	"github.com/fernandosanchezjr/fastrng/utils"
)

var ErrMismatch = errors.New("fixture mismatch")

var ErrNotDeterministic = errors.New("source kind is not seedable")

var ErrBadCount = errors.New("fixture counts must not be negative")

// Record pins the output of one seeded source: its first words and a digest
// of its first Bytes bytes.
type Record struct {
	Name    string
	Kind    string
	Seed    uint64
	Seq     uint64
	Words   []uint32
	Bytes   int
	Digest  [32]byte
	Created time.Time
}

func newSource(kind string, seed, seq uint64) (random.Source, error) {
	if kind == sources.KindCrypto {
		return nil, fmt.Errorf("%w: %s", ErrNotDeterministic, kind)
	}
	return sources.New(kind, seed, seq)
}

func words(kind string, seed, seq uint64, n int) ([]uint32, error) {
	src, err := newSource(kind, seed, seq)
	if err != nil {
		return nil, err
	}
	return random.ArrayOf[uint32](n, random.GetUint32)(src), nil
}

func digest(kind string, seed, seq uint64, n int) ([32]byte, error) {
	src, err := newSource(kind, seed, seq)
	if err != nil {
		return [32]byte{}, err
	}
	return utils.StreamDigest(src, n), nil
}

// Capture records wordCount words and a digest of byteCount bytes, each from
// a freshly seeded source.
func Capture(name, kind string, seed, seq uint64, wordCount, byteCount int) (*Record, error) {
	if wordCount < 0 || byteCount < 0 {
		return nil, fmt.Errorf("%w: words %d, bytes %d", ErrBadCount, wordCount, byteCount)
	}
	w, err := words(kind, seed, seq, wordCount)
	if err != nil {
		return nil, err
	}
	d, err := digest(kind, seed, seq, byteCount)
	if err != nil {
		return nil, err
	}
	return &Record{
		Name:    name,
		Kind:    kind,
		Seed:    seed,
		Seq:     seq,
		Words:   w,
		Bytes:   byteCount,
		Digest:  d,
		Created: time.Now().UTC(),
	}, nil
}

// Verify regenerates the record and returns an error wrapping ErrMismatch on
// the first difference.
func Verify(rec *Record) error {
	w, err := words(rec.Kind, rec.Seed, rec.Seq, len(rec.Words))
	if err != nil {
		return err
	}
	for i := range w {
		if w[i] != rec.Words[i] {
			return fmt.Errorf("%w: %s word %d is %#08x, recorded %#08x", ErrMismatch, rec.Name, i, w[i], rec.Words[i])
		}
	}
	d, err := digest(rec.Kind, rec.Seed, rec.Seq, rec.Bytes)
	if err != nil {
		return err
	}
	if d != rec.Digest {
		return fmt.Errorf("%w: %s digest of %d bytes differs", ErrMismatch, rec.Name, rec.Bytes)
	}
	return nil
}
