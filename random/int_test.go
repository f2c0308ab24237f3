package random

import (
	"math/bits"
	"testing"
)

func TestUnsignedLittleEndian(t *testing.T) {
	tests := []struct {
		name string
		get  func(Source) uint64
		want uint64
	}{
		{"u8", func(s Source) uint64 { return uint64(GetUint8(s)) }, 0x00},
		{"u16", func(s Source) uint64 { return uint64(GetUint16(s)) }, 0x0100},
		{"u32", func(s Source) uint64 { return uint64(GetUint32(s)) }, 0x03020100},
		{"u64", GetUint64, 0x0706050403020100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.get(&counterSource{}); got != tt.want {
				t.Errorf("got %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestSignedReinterpretsBits(t *testing.T) {
	ones := func() Source { return &scriptSource{data: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}} }
	if v := GetInt8(ones()); v != -1 {
		t.Errorf("GetInt8 = %d, want -1", v)
	}
	if v := GetInt16(ones()); v != -1 {
		t.Errorf("GetInt16 = %d, want -1", v)
	}
	if v := GetInt32(ones()); v != -1 {
		t.Errorf("GetInt32 = %d, want -1", v)
	}
	if v := GetInt64(ones()); v != -1 {
		t.Errorf("GetInt64 = %d, want -1", v)
	}
	if v := GetInt8(&scriptSource{data: []byte{0x80}}); v != -128 {
		t.Errorf("GetInt8(0x80) = %d, want -128", v)
	}
}

func TestPlatformWidth(t *testing.T) {
	got := GetUint(&counterSource{})
	if bits.UintSize == 64 {
		if uint64(got) != 0x0706050403020100 {
			t.Errorf("GetUint = %#x", got)
		}
	} else if got != uint(0x03020100) {
		t.Errorf("GetUint = %#x", got)
	}
	src := &counterSource{}
	GetInt(src)
	if want := byte(bits.UintSize / 8); src.ctr != want {
		t.Errorf("GetInt consumed %d bytes, want %d", src.ctr, want)
	}
}

func TestUint128(t *testing.T) {
	u := GetUint128(&counterSource{})
	if u.Lo != 0x0706050403020100 || u.Hi != 0x0f0e0d0c0b0a0908 {
		t.Errorf("GetUint128 = %#x %#x", u.Hi, u.Lo)
	}
	data := make([]byte, 16)
	for i := range data {
		data[i] = 0xff
	}
	i := GetInt128(&scriptSource{data: data})
	if i.Hi != -1 || i.Lo != ^uint64(0) {
		t.Errorf("GetInt128 = %d %#x", i.Hi, i.Lo)
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want bool
	}{
		{"top_bit", 0b1000_0000, true},
		{"zero", 0x00, false},
		{"low_bits_only", 0x7f, false},
		{"all_bits", 0xff, true},
		{"low_bit", 0x01, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetBool(&scriptSource{data: []byte{tt.b}}); got != tt.want {
				t.Errorf("GetBool(%#x) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
}

func TestCharRejectsInvalidScalars(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		want  rune
	}{
		{"ascii", []uint32{0x41}, 'A'},
		{"surrogate_low", []uint32{0xd800, 0x42}, 'B'},
		{"surrogate_high", []uint32{0xdfff, 0x43}, 'C'},
		{"above_max", []uint32{0x110000, 0x1f600}, '\U0001f600'},
		{"negative_rune", []uint32{0xffffffff, 0xd7ff}, '\ud7ff'},
		{"max_rune", []uint32{0x10ffff}, '\U0010ffff'},
		{"several_rejections", []uint32{0xd900, 0xffff0000, 0x80000000, 0x263a}, '☺'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := words32(tt.words...)
			if got := GetChar(src); got != tt.want {
				t.Errorf("GetChar = %U, want %U", got, tt.want)
			}
			if src.pos != len(src.data) {
				t.Errorf("consumed %d bytes, want %d", src.pos, len(src.data))
			}
		})
	}
}
