// Package vmath holds vector math on the ground plane, cubic Bézier evaluation and
// the fixed-point cell walker used to rasterize lines onto the terminal grid.
package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 fixed point, used by the cell walker so corner crossings compare exactly
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
)

// ToInt floors a Q32.32 value to its integer part
func ToInt(f int64) int { return int(f >> Shift) }

// FromFloat converts to Q32.32, truncating toward zero
func FromFloat(f float64) int64 { return int64(f * Scale) }

func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit
	hi := ua >> 32
	lo := ua << 32

	// Quotient would not fit in 64 bits
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// Clamp01 limits x to [0, 1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// LerpF interpolates scalars, t is not clamped
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}
