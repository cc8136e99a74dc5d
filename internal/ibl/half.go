package ibl

import gomath "math"

// Baked textures are stored as 16-bit floats, four channels per texel.

func float32ToHalf(f float32) uint16 {
	b := gomath.Float32bits(f)
	sign := uint16(b>>16) & 0x8000
	exp := int32(b>>23&0xff) - 127 + 15
	mant := b & 0x7fffff

	switch {
	case exp >= 31:
		// Overflow to infinity; NaN keeps a mantissa bit.
		if exp == 143 && mant != 0 {
			return sign | 0x7e00
		}
		return sign | 0x7c00
	case exp <= 0:
		if exp < -10 {
			return sign
		}
		mant |= 0x800000
		return sign | uint16(mant>>uint32(14-exp))
	default:
		return sign | uint16(exp)<<10 | uint16(mant>>13)
	}
}

func halfToFloat32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h >> 10 & 0x1f)
	mant := uint32(h & 0x3ff)

	switch {
	case exp == 0:
		if mant == 0 {
			return gomath.Float32frombits(sign)
		}
		// Subnormal: renormalize.
		for mant&0x400 == 0 {
			mant <<= 1
			exp--
		}
		mant &= 0x3ff
		return gomath.Float32frombits(sign | (exp+1-15+127)<<23 | mant<<13)
	case exp == 31:
		if mant == 0 {
			return gomath.Float32frombits(sign | 0x7f800000)
		}
		return gomath.Float32frombits(sign | 0x7fc00000)
	default:
		return gomath.Float32frombits(sign | (exp-15+127)<<23 | mant<<13)
	}
}
