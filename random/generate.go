package random

// Value lists the types Gen knows how to build directly.
type Value interface {
	uint8 | uint16 | uint32 | uint64 | uint | uintptr |
		int8 | int16 | int32 | int64 | int |
		bool | Char | float32 | float64 | Uint128 | Int128
}

// Generator is implemented by user types that know how to build themselves
// from a Source. Generate is called on a zero value.
//
//	type Point struct{ X, Y float64 }
//
//	func (p *Point) Generate(src random.Source) {
//		p.X = random.GetFloat64(src)
//		p.Y = random.GetFloat64(src)
//	}
type Generator interface {
	Generate(src Source)
}

// Gen returns a random value of type T.
func Gen[T Value](src Source) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = GetUint8(src)
	case *uint16:
		*p = GetUint16(src)
	case *uint32:
		*p = GetUint32(src)
	case *uint64:
		*p = GetUint64(src)
	case *uint:
		*p = GetUint(src)
	case *uintptr:
		*p = GetUintptr(src)
	case *int8:
		*p = GetInt8(src)
	case *int16:
		*p = GetInt16(src)
	case *int32:
		*p = GetInt32(src)
	case *int64:
		*p = GetInt64(src)
	case *int:
		*p = GetInt(src)
	case *bool:
		*p = GetBool(src)
	case *Char:
		*p = Char(GetChar(src))
	case *float32:
		*p = GetFloat32(src)
	case *float64:
		*p = GetFloat64(src)
	case *Uint128:
		*p = GetUint128(src)
	case *Int128:
		*p = GetInt128(src)
	}
	return v
}

// GenCustom builds a T through its Generator implementation.
func GenCustom[T any, PT interface {
	*T
	Generator
}](src Source) T {
	var v T
	PT(&v).Generate(src)
	return v
}
