/*Package random turns any source of random bytes into typed values.

A Source only has to fill a buffer. Everything else (integers, booleans,
characters, floats, arrays and tuples) is built on top of that one call, so
any conforming source works: the PCG generator in package pcg, the gonum
generators in package sources, the OS entropy pool or a remote service.

	rng := pcg.Seed(1, 1)
	x := random.GetUint64(rng)
	f := random.Gen[float64](rng)
	pair := random.PairOf(random.Of[uint8](), random.Of[bool]())(rng)

Bytes are always assembled little-endian, independent of the host byte order,
so a fixed seed maps to the same values on every platform.
*/
package random

import (
	"encoding/binary"
	"fmt"
)

// Source is the byte-fill capability every builder consumes. Sources that
// cannot fail always return nil.
type Source interface {
	TryFillBytes(buf []byte) error
}

// Uint32Source is an optional fast path. Implementations must return the
// little-endian value of the 4 bytes TryFillBytes would have written.
type Uint32Source interface {
	Uint32() uint32
}

// SourceError is the panic value raised by FillBytes when the source fails.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("failed getting randomness: %v", e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// FillBytes fills buf from src and panics with a *SourceError if the source
// fails. Callers that can handle failure should call TryFillBytes directly.
func FillBytes(src Source, buf []byte) {
	if err := src.TryFillBytes(buf); err != nil {
		panic(&SourceError{Err: err})
	}
}

// TryGetUint64 is the fallible form of GetUint64.
func TryGetUint64(src Source) (uint64, error) {
	var buf [8]byte
	if err := src.TryFillBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
