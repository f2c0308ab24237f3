package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/fernandosanchezjr/fastrng/pcg"
	log "github.com/sirupsen/logrus"
)

func TestStreamDigestMatchesSingleFill(t *testing.T) {
	for _, n := range []int{0, 1, 7, digestChunkSize, digestChunkSize + 3, 3*digestChunkSize + 1} {
		buf := make([]byte, n)
		_ = pcg.Seed(1, 1).TryFillBytes(buf)
		want := sha256.Sum256(buf)
		got := StreamDigest(pcg.Seed(1, 1), n)
		if got != want {
			t.Errorf("n=%d digest %s, want %s", n, hex.EncodeToString(got[:]), hex.EncodeToString(want[:]))
		}
	}
}

func TestStreamDigestSeedSensitive(t *testing.T) {
	a := StreamDigest(pcg.Seed(1, 1), 1024)
	b := StreamDigest(pcg.Seed(1, 2), 1024)
	if a == b {
		t.Error("different sequences share a digest")
	}
	log.WithField("digest", hex.EncodeToString(a[:])).Debugln("Seed(1, 1)")
}
