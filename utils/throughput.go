package utils

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

const MaxRawThroughput = 1000

// Throughput is a rate in bytes per second.
type Throughput float64

func NewThroughput(n int, elapsed time.Duration) Throughput {
	if elapsed <= 0 {
		return 0
	}
	return Throughput(float64(n) / elapsed.Seconds())
}

func (t Throughput) String() string {
	if t < MaxRawThroughput {
		return strconv.FormatFloat(float64(t), 'f', -1, 64) + " B/s"
	}
	return humanize.SIWithDigits(float64(t), 2, "B/s")
}

// Bytes formats a byte count the way throughput reports do.
func Bytes(n int) string {
	return humanize.Bytes(uint64(n))
}
