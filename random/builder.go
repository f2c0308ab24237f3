package random

// Builder constructs one value of type T from a Source. Builders compose:
// arrays and tuples of builders are builders themselves.
type Builder[T any] func(src Source) T

// Of returns the builder for a primitive type.
func Of[T Value]() Builder[T] {
	return Gen[T]
}

// Custom returns the builder for a type implementing Generator.
func Custom[T any, PT interface {
	*T
	Generator
}]() Builder[T] {
	return GenCustom[T, PT]
}

// Fill generates every element of dst with elem, in ascending index order.
// Fixed-size arrays are filled through a slice of themselves:
//
//	var key [32]byte
//	random.Fill(rng, key[:], random.Of[byte]())
func Fill[T any](src Source, dst []T, elem Builder[T]) {
	for i := range dst {
		dst[i] = elem(src)
	}
}

// ArrayOf returns a builder for n-element slices.
func ArrayOf[T any](n int, elem Builder[T]) Builder[[]T] {
	return func(src Source) []T {
		out := make([]T, n)
		Fill(src, out, elem)
		return out
	}
}

type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// PairOf returns a builder generating First then Second.
func PairOf[A, B any](a Builder[A], b Builder[B]) Builder[Pair[A, B]] {
	return func(src Source) Pair[A, B] {
		var p Pair[A, B]
		p.First = a(src)
		p.Second = b(src)
		return p
	}
}

func TripleOf[A, B, C any](a Builder[A], b Builder[B], c Builder[C]) Builder[Triple[A, B, C]] {
	return func(src Source) Triple[A, B, C] {
		var t Triple[A, B, C]
		t.First = a(src)
		t.Second = b(src)
		t.Third = c(src)
		return t
	}
}

func QuadOf[A, B, C, D any](a Builder[A], b Builder[B], c Builder[C], d Builder[D]) Builder[Quad[A, B, C, D]] {
	return func(src Source) Quad[A, B, C, D] {
		var q Quad[A, B, C, D]
		q.First = a(src)
		q.Second = b(src)
		q.Third = c(src)
		q.Fourth = d(src)
		return q
	}
}
