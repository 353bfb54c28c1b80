// Package palette converts iteration results into pixel colors.
//
// Every float-to-byte conversion goes through Saturate8, so no channel value
// wraps or depends on how the platform converts out-of-range floats.
package palette

import (
	"image/color"
	"math"
)

// Saturate8 converts v to a byte, clamping to [0, 255] and truncating toward
// zero in between. NaN maps to 0.
func Saturate8(v float32) uint8 {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	default:
		return uint8(v)
	}
}

// Luma converts escape index i, in [0, maxIterations), to a gray level.
//
// Budgets of up to 256 iterations use the index directly. Larger budgets are
// rescaled so that maxIterations-1 maps to 255.
func Luma(i, maxIterations uint16) uint8 {
	if maxIterations <= math.MaxUint8+1 {
		return uint8(i)
	}

	scaled := uint32(i) * math.MaxUint8 / uint32(maxIterations-1)
	if scaled > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(scaled)
}

// Fallback is the color of a pixel whose exponent is NaN or infinite.
var Fallback = color.RGBA{A: math.MaxUint8}

// LyapunovRGB colors exponent λ: negative (stable) exponents shade from black
// to yellow, zero is full yellow and positive (chaotic) exponents shade toward
// blue.
func LyapunovRGB(lambda float32) color.RGBA {
	l := float64(lambda)
	switch {
	case math.IsNaN(l) || math.IsInf(l, 0):
		return Fallback
	case lambda < 0:
		v := Saturate8(255 * -lambda)
		return color.RGBA{R: v, G: v, A: math.MaxUint8}
	case lambda == 0:
		return color.RGBA{R: 255, G: 255, A: math.MaxUint8}
	default:
		return color.RGBA{
			G: Saturate8(0.42 * lambda),
			B: Saturate8(255 * lambda),
			A: math.MaxUint8,
		}
	}
}
