package mct

import "math"

// Fixed point values carry 13 fractional bits.
const (
	FixShift = 13
	FixOne   = 1 << FixShift // 8192
	fixHalf  = FixOne >> 1   // 4096
)

// FixMul multiplies a by the fixed point value b and rounds the product
// back to an integer: (a*b + 4096) >> 13, computed in 64 bits.
func FixMul(a, b int32) int32 {
	return int32((int64(a)*int64(b) + fixHalf) >> FixShift)
}

// FixFromFloat rescales a real coefficient to 13-bit fixed point, rounding
// to the nearest integer.
func FixFromFloat(v float32) int32 {
	return int32(math.Round(float64(v) * FixOne))
}
