package utils

import (
	"github.com/fernandosanchezjr/fastrng/random"
	"github.com/fernandosanchezjr/sha256-simd"
)

const digestChunkSize = 4096

// StreamDigest hashes the first n bytes produced by src. Bytes are drawn in
// chunks whose size is a multiple of 8, so word-based sources emit the same
// stream as a single fill would.
func StreamDigest(src random.Source, n int) [32]byte {
	h := sha256.New()
	buf := make([]byte, digestChunkSize)
	for n > 0 {
		chunk := buf
		if n < len(chunk) {
			chunk = chunk[:n]
		}
		random.FillBytes(src, chunk)
		_, _ = h.Write(chunk)
		n -= len(chunk)
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
