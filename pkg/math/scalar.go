// Package math provides float32 math types and functions for rendering.
package math

import "math"

// Pi is the circle constant as a float32.
const Pi = float32(math.Pi)

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Pow returns x**y.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// Exp returns e**x.
func Exp(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

// Exp2 returns 2**x.
func Exp2(x float32) float32 {
	return float32(math.Exp2(float64(x)))
}

// Log2 returns the base-2 logarithm of x.
func Log2(x float32) float32 {
	return float32(math.Log2(float64(x)))
}

// Sin returns the sine of x (radians).
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns the cosine of x (radians).
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Tan returns the tangent of x (radians).
func Tan(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

// Asin returns the arcsine of x.
func Asin(x float32) float32 {
	return float32(math.Asin(float64(x)))
}

// Acos returns the arccosine of x.
func Acos(x float32) float32 {
	return float32(math.Acos(float64(x)))
}

// Atan2 returns the arctangent of y/x using the signs to pick the quadrant.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Floor returns the largest integer value less than or equal to x.
func Floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// Ceil returns the smallest integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return float32(math.Ceil(float64(x)))
}

// Fract returns the fractional part of x.
func Fract(x float32) float32 {
	return x - Floor(x)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate limits x to the range [0, 1].
func Saturate(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep performs Hermite interpolation between 0 and 1 as x moves
// across [edge0, edge1].
func Smoothstep(edge0, edge1, x float32) float32 {
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}
