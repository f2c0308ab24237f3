package random

import (
	"encoding/binary"
	"errors"
	"testing"
)

// scriptSource replays a fixed byte script and fails once it runs out.
type scriptSource struct {
	data []byte
	pos  int
}

var errScriptExhausted = errors.New("script exhausted")

func (s *scriptSource) TryFillBytes(buf []byte) error {
	if s.pos+len(buf) > len(s.data) {
		return errScriptExhausted
	}
	s.pos += copy(buf, s.data[s.pos:])
	return nil
}

func words32(values ...uint32) *scriptSource {
	data := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(data[4*i:], v)
	}
	return &scriptSource{data: data}
}

func words64(values ...uint64) *scriptSource {
	data := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(data[8*i:], v)
	}
	return &scriptSource{data: data}
}

// counterSource writes 0, 1, 2, ... one byte at a time.
type counterSource struct {
	ctr byte
}

func (c *counterSource) TryFillBytes(buf []byte) error {
	for i := range buf {
		buf[i] = c.ctr
		c.ctr++
	}
	return nil
}

func TestCounterUint32(t *testing.T) {
	src := &counterSource{}
	if v := GetUint32(src); v != 50462976 {
		t.Errorf("first GetUint32 = %d, want 50462976", v)
	}
	if v := GetUint32(src); v != 117835012 {
		t.Errorf("second GetUint32 = %d, want 117835012", v)
	}
}

func TestFillBytesPanicsOnSourceFailure(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("FillBytes did not panic")
		}
		err, ok := r.(*SourceError)
		if !ok {
			t.Fatalf("panic value %T, want *SourceError", r)
		}
		if !errors.Is(err, errScriptExhausted) {
			t.Errorf("panic error %v does not wrap errScriptExhausted", err)
		}
	}()
	FillBytes(&scriptSource{}, make([]byte, 1))
}

func TestTryGetUint64(t *testing.T) {
	v, err := TryGetUint64(words64(0xdeadbeefcafebabe))
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xdeadbeefcafebabe {
		t.Errorf("TryGetUint64 = %#x", v)
	}
	if _, err = TryGetUint64(&scriptSource{}); !errors.Is(err, errScriptExhausted) {
		t.Errorf("TryGetUint64 error = %v, want errScriptExhausted", err)
	}
}
