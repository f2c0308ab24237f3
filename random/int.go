package random

import (
	"encoding/binary"
	"math/bits"
)

// Uint128 is a 128-bit unsigned integer. It is assembled from 16 bytes,
// the low word first.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is the two's-complement reinterpretation of a Uint128.
type Int128 struct {
	Hi int64
	Lo uint64
}

func GetUint8(src Source) uint8 {
	var buf [1]byte
	FillBytes(src, buf[:])
	return buf[0]
}

func GetUint16(src Source) uint16 {
	var buf [2]byte
	FillBytes(src, buf[:])
	return binary.LittleEndian.Uint16(buf[:])
}

// GetUint32 draws 4 bytes, or uses the source's Uint32 fast path.
func GetUint32(src Source) uint32 {
	if fast, ok := src.(Uint32Source); ok {
		return fast.Uint32()
	}
	var buf [4]byte
	FillBytes(src, buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

func GetUint64(src Source) uint64 {
	var buf [8]byte
	FillBytes(src, buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

func GetUint128(src Source) Uint128 {
	var buf [16]byte
	FillBytes(src, buf[:])
	return Uint128{
		Lo: binary.LittleEndian.Uint64(buf[:8]),
		Hi: binary.LittleEndian.Uint64(buf[8:]),
	}
}

// GetUint follows the 64 or 32-bit rule depending on the platform word size.
func GetUint(src Source) uint {
	if bits.UintSize == 32 {
		return uint(GetUint32(src))
	}
	return uint(GetUint64(src))
}

func GetUintptr(src Source) uintptr {
	return uintptr(GetUint(src))
}

func GetInt8(src Source) int8 {
	return int8(GetUint8(src))
}

func GetInt16(src Source) int16 {
	return int16(GetUint16(src))
}

func GetInt32(src Source) int32 {
	return int32(GetUint32(src))
}

func GetInt64(src Source) int64 {
	return int64(GetUint64(src))
}

func GetInt(src Source) int {
	return int(GetUint(src))
}

func GetInt128(src Source) Int128 {
	u := GetUint128(src)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}
