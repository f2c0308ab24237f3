// Package pcg provides FastRng, a fast non-cryptographic generator built on
// the 64-bit state / 32-bit output permuted congruential generator (pcg32).
//
// It is meant for tests and simulations. Do not use it for keys or passwords.
package pcg

import (
	"encoding/binary"
	"math/bits"
	"time"
)

const Multiplier = 6364136223846793005

// FastRng is a pcg32 generator. It implements random.Source and
// random.Uint32Source. A FastRng must not be used from two goroutines at once.
type FastRng struct {
	state uint64
	inc   uint64
}

// Seed returns a generator for the given starting state and stream. Equal
// arguments always give equal output sequences.
func Seed(seed, sequence uint64) *FastRng {
	inc := sequence<<1 | 1
	rng := &FastRng{state: seed + inc, inc: inc}
	rng.step()
	return rng
}

// New returns a generator seeded from the wall clock. Supply your own seed
// when seed quality matters.
func New() *FastRng {
	return Seed(TimeSeed())
}

// TimeSeed returns the current unix seconds and sub-second nanoseconds.
func TimeSeed() (uint64, uint64) {
	now := time.Now()
	return uint64(now.Unix()), uint64(now.Nanosecond())
}

// Restore rebuilds a generator from a State snapshot. The increment is forced
// odd.
func Restore(state, inc uint64) *FastRng {
	return &FastRng{state: state, inc: inc | 1}
}

// State returns the current state and increment.
func (r *FastRng) State() (state, inc uint64) {
	return r.state, r.inc
}

func (r *FastRng) step() {
	r.state = r.state*Multiplier + r.inc
}

// Uint32 advances the generator and returns the permuted old state.
func (r *FastRng) Uint32() uint32 {
	old := r.state
	r.step()

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// TryFillBytes writes little-endian words into buf 4 bytes at a time. The last
// word is truncated when len(buf) is not a multiple of 4. It never fails.
func (r *FastRng) TryFillBytes(buf []byte) error {
	var word [4]byte
	for len(buf) >= 4 {
		binary.LittleEndian.PutUint32(buf, r.Uint32())
		buf = buf[4:]
	}
	if len(buf) > 0 {
		binary.LittleEndian.PutUint32(word[:], r.Uint32())
		copy(buf, word[:])
	}
	return nil
}
