package random

import (
	"errors"
	"math"
	"math/bits"
)

// ErrBrokenRandomness is the panic value raised when a float draw sees only
// zero words all the way down to the denormal floor. A working source hits
// this with probability around 2^-160 (float32) or 2^-1024 (float64).
var ErrBrokenRandomness = errors.New("randomness is broken: got only zero words")

const (
	minExp32 = -149  // Emin(-126) - p(24) + 1
	minExp64 = -1074 // Emin(-1022) - p(53) + 1

	minNormalExp32 = -126
	minNormalExp64 = -1022
)

// GetFloat32 returns a float32 uniformly distributed over (0, 1), using every
// bit of precision the format has near zero.
//
// See https://mumble.net/~campbell/2014/04/28/uniform-random-float
func GetFloat32(src Source) float32 {
	for {
		if f := float32Candidate(src); f < 1 {
			return f
		}
	}
}

// GetFloat64 is the float64 counterpart of GetFloat32.
func GetFloat64(src Source) float64 {
	for {
		if f := float64Candidate(src); f < 1 {
			return f
		}
	}
}

func float32Candidate(src Source) float32 {
	exponent := -32
	significand := GetUint32(src)
	for significand == 0 {
		exponent -= 32
		if exponent < minExp32 {
			panic(ErrBrokenRandomness)
		}
		significand = GetUint32(src)
	}

	// Shift the leading zeros into the exponent and refill with fresh bits.
	if shift := bits.LeadingZeros32(significand); shift > 0 {
		exponent -= shift
		significand <<= uint(shift)
		significand |= GetUint32(src) >> uint(32-shift)
	}
	// Sticky bit.
	significand |= 1

	return scale32(float32(significand), exponent)
}

func float64Candidate(src Source) float64 {
	exponent := -64
	significand := GetUint64(src)
	for significand == 0 {
		exponent -= 64
		if exponent < minExp64 {
			panic(ErrBrokenRandomness)
		}
		significand = GetUint64(src)
	}

	if shift := bits.LeadingZeros64(significand); shift > 0 {
		exponent -= shift
		significand <<= uint(shift)
		significand |= GetUint64(src) >> uint(64-shift)
	}
	significand |= 1

	return scale64(float64(significand), exponent)
}

// exp2f32 builds 2^exp by placing the biased exponent directly. exp must be
// in the normal range.
func exp2f32(exp int) float32 {
	return math.Float32frombits(uint32(127+exp) << 23)
}

func exp2f64(exp int) float64 {
	return math.Float64frombits(uint64(1023+exp) << 52)
}

// scale32 multiplies f by 2^exp, stepping through the normal range first so
// results in the subnormal tail do not flush to zero.
func scale32(f float32, exp int) float32 {
	for exp < minNormalExp32 {
		f *= exp2f32(minNormalExp32)
		exp -= minNormalExp32
	}
	return f * exp2f32(exp)
}

func scale64(f float64, exp int) float64 {
	for exp < minNormalExp64 {
		f *= exp2f64(minNormalExp64)
		exp -= minNormalExp64
	}
	return f * exp2f64(exp)
}
