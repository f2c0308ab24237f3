// Package data draws typed values by name for the CLI and the HTTP service.
package data

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fernandosanchezjr/fastrng/random"
)

var (
	ErrUnknownType = errors.New("unknown value type")
	ErrBadCount    = errors.New("value count must not be negative")
)

type drawFunc func(src random.Source, n int) []interface{}

func draw[T any](elem random.Builder[T]) drawFunc {
	return func(src random.Source, n int) []interface{} {
		ret := make([]interface{}, n)
		for i := range ret {
			ret[i] = elem(src)
		}
		return ret
	}
}

func getString(src random.Source) string {
	return string(random.GetChar(src))
}

var drawers = map[string]drawFunc{
	"u8":    draw(random.Of[uint8]()),
	"u16":   draw(random.Of[uint16]()),
	"u32":   draw(random.Of[uint32]()),
	"u64":   draw(random.Of[uint64]()),
	"u128":  draw(random.Of[random.Uint128]()),
	"usize": draw(random.Of[uint]()),
	"i8":    draw(random.Of[int8]()),
	"i16":   draw(random.Of[int16]()),
	"i32":   draw(random.Of[int32]()),
	"i64":   draw(random.Of[int64]()),
	"i128":  draw(random.Of[random.Int128]()),
	"isize": draw(random.Of[int]()),
	"bool":  draw(random.Of[bool]()),
	"char":  draw(random.Builder[string](getString)),
	"f32":   draw(random.Of[float32]()),
	"f64":   draw(random.Of[float64]()),
}

// Types lists the names Draw accepts, sorted.
func Types() []string {
	names := make([]string, 0, len(drawers))
	for name := range drawers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Draw returns n values of the named type, generated in order.
func Draw(src random.Source, typeName string, n int) ([]interface{}, error) {
	f, found := drawers[typeName]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeName)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	return f(src, n), nil
}

// Words returns n words as the generator's native uint32 output.
func Words(src random.Source, n int) []uint32 {
	return random.ArrayOf[uint32](n, random.GetUint32)(src)
}
