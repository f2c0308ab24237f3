package random

import "unicode/utf8"

const boolBit = 0b1000_0000

// Char is a Unicode scalar value. It is a distinct type so that Gen can tell
// a character request apart from an int32 one.
type Char rune

// GetBool draws one byte and reports whether its top bit is set.
func GetBool(src Source) bool {
	return GetUint8(src)&boolBit != 0
}

// GetChar draws 32-bit values until one is a valid scalar value, skipping
// surrogates and anything above utf8.MaxRune.
func GetChar(src Source) rune {
	for {
		if r := rune(GetUint32(src)); utf8.ValidRune(r) {
			return r
		}
	}
}
