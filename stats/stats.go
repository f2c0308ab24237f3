// Package stats runs quick statistical sanity checks over a random.Source.
// They catch broken sources, not subtle bias.
package stats

import (
	"errors"
	"math/bits"
	"sort"

	"github.com/fernandosanchezjr/fastrng/random"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

const byteCategories = 256

var ErrNoSamples = errors.New("chi-square needs at least one sample")

// Result is the outcome of a chi-square goodness-of-fit test.
type Result struct {
	Statistic        float64
	DegreesOfFreedom int
	PValue           float64
}

// Pass reports whether the p-value lies inside [alpha, 1-alpha].
func (r Result) Pass(alpha float64) bool {
	return r.PValue >= alpha && r.PValue <= 1-alpha
}

// ByteChiSquare draws n bytes and tests their histogram against the uniform
// distribution. n must be positive.
func ByteChiSquare(src random.Source, n int) (Result, error) {
	if n <= 0 {
		return Result{}, ErrNoSamples
	}
	observed := make([]float64, byteCategories)
	buf := make([]byte, n)
	random.FillBytes(src, buf)
	for _, b := range buf {
		observed[b]++
	}
	expected := make([]float64, byteCategories)
	for i := range expected {
		expected[i] = float64(n) / byteCategories
	}
	chi := stat.ChiSquare(observed, expected)
	dist := distuv.ChiSquared{K: byteCategories - 1}
	return Result{
		Statistic:        chi,
		DegreesOfFreedom: byteCategories - 1,
		PValue:           1 - dist.CDF(chi),
	}, nil
}

// Moments summarizes n float64 draws. OutOfRange counts draws outside the
// open interval (0, 1) and should always be zero.
type Moments struct {
	Mean       float64
	Variance   float64
	Min        float64
	Max        float64
	OutOfRange int
}

// FloatMoments returns zero Moments when n is not positive.
func FloatMoments(src random.Source, n int) Moments {
	var m Moments
	if n <= 0 {
		return m
	}
	xs := Float64s(src, n)
	m.Mean, m.Variance = stat.MeanVariance(xs, nil)
	m.Min = floats.Min(xs)
	m.Max = floats.Max(xs)
	for _, x := range xs {
		if !(x > 0 && x < 1) {
			m.OutOfRange++
		}
	}
	return m
}

// Float64s draws n values with random.GetFloat64.
func Float64s(src random.Source, n int) []float64 {
	xs := make([]float64, n)
	random.Fill[float64](src, xs, random.GetFloat64)
	return xs
}

// BitBalance returns the fraction of set bits over n 64-bit words, or 0 when
// n is not positive.
func BitBalance(src random.Source, n int) float64 {
	if n <= 0 {
		return 0
	}
	var ones int
	for i := 0; i < n; i++ {
		ones += bits.OnesCount64(random.GetUint64(src))
	}
	return float64(ones) / float64(64*n)
}

// Histogram counts values in [0, 1) into equal-width bins. It returns the
// lower edge of every bin and its count. values is sorted in place.
func Histogram(values []float64, bins int) (edges, counts []float64) {
	dividers := make([]float64, bins+1)
	floats.Span(dividers, 0, 1)
	sort.Float64s(values)
	counts = stat.Histogram(nil, dividers, values, nil)
	return dividers[:bins], counts
}
