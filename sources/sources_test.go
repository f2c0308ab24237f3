package sources

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fernandosanchezjr/fastrng/random"
	log "github.com/sirupsen/logrus"
)

func TestNewKinds(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind, func(t *testing.T) {
			src, err := New(kind, 42, 54)
			if err != nil {
				t.Fatal(err)
			}
			buf := make([]byte, 64)
			if err = src.TryFillBytes(buf); err != nil {
				t.Fatal(err)
			}
			if bytes.Equal(buf, make([]byte, 64)) {
				t.Error("source produced 64 zero bytes")
			}
			log.WithFields(log.Fields{"kind": kind, "value": random.GetUint64(src)}).Debugln("Sample")
		})
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New("lcg", 1, 1); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("New error = %v, want ErrUnknownKind", err)
	}
}

func TestSeededKindsAreDeterministic(t *testing.T) {
	for _, kind := range []string{KindPCG, KindXoshiro, KindMT} {
		t.Run(kind, func(t *testing.T) {
			a, _ := New(kind, 7, 9)
			b, _ := New(kind, 7, 9)
			for i := 0; i < 100; i++ {
				if x, y := random.GetUint64(a), random.GetUint64(b); x != y {
					t.Fatalf("draw %d differs: %#x != %#x", i, x, y)
				}
			}
		})
	}
}

func TestUint64SourceTruncates(t *testing.T) {
	full := make([]byte, 16)
	_ = Xoshiro(3).TryFillBytes(full)

	src := Xoshiro(3)
	part := make([]byte, 3)
	_ = src.TryFillBytes(part)
	if !bytes.Equal(part, full[:3]) {
		t.Errorf("partial fill = %x, want %x", part, full[:3])
	}
	next := make([]byte, 8)
	_ = src.TryFillBytes(next)
	if !bytes.Equal(next, full[8:]) {
		t.Errorf("fill after partial = %x, want second word %x", next, full[8:])
	}
}

func TestReaderSource(t *testing.T) {
	src := Reader(strings.NewReader("\x01\x02\x03"))
	buf := make([]byte, 2)
	if err := src.TryFillBytes(buf); err != nil {
		t.Fatal(err)
	}
	if buf[0] != 1 || buf[1] != 2 {
		t.Errorf("buf = %v", buf)
	}
	if err := src.TryFillBytes(buf); !errors.Is(err, ErrShortRead) {
		t.Errorf("short read error = %v, want ErrShortRead", err)
	}
}

func TestDeterministicSources(t *testing.T) {
	if v := random.GetUint32(&Counter{}); v != 50462976 {
		t.Errorf("Counter GetUint32 = %d", v)
	}
	if !random.GetBool(Pattern(0b1000_0000)) {
		t.Error("Pattern(0x80) GetBool = false")
	}
	if random.GetBool(Pattern(0x00)) {
		t.Error("Pattern(0x00) GetBool = true")
	}
	if v := random.GetUint32(Pattern(1, 2)); v != 0x02010201 {
		t.Errorf("Pattern GetUint32 = %#x", v)
	}
}

func TestFailingSource(t *testing.T) {
	boom := errors.New("entropy unavailable")
	if err := Failing(boom).TryFillBytes(make([]byte, 1)); err != boom {
		t.Errorf("TryFillBytes = %v", err)
	}
	defer func() {
		var srcErr *random.SourceError
		if r, ok := recover().(error); !ok || !errors.As(r, &srcErr) || srcErr.Err != boom {
			t.Errorf("GetUint8 did not panic with the source error")
		}
	}()
	random.GetUint8(Failing(boom))
}
