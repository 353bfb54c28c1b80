// Package escape implements bounded escape-time iteration of z² + c.
package escape

import "github.com/willbeason/fract/pkg/transforms"

// Threshold2 is the squared escape radius. A point escapes once |z|² exceeds it.
const Threshold2 = 4

// Index iterates z ← z² + c from z0 for at most maxIterations steps and returns
// the index of the last step completed before |z| was seen to exceed 2.
//
// The check runs before each update, and the index is only recorded after an
// update, so a point that escapes on the first check and a point that escapes
// after exactly one update both report 0. Orbits that never escape report
// maxIterations-1. A NaN anywhere fails every check and the loop runs out.
func Index(z0, c complex64, maxIterations uint16) uint16 {
	j := transforms.Julia{C: c}
	z := z0

	var i uint16
	for t := uint16(0); t < maxIterations; t++ {
		if transforms.Norm2(z) > Threshold2 {
			break
		}
		z = j.Next(z)
		i = t
	}

	return i
}
