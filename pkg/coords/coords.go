// Package coords maps pixel indices onto the parameter planes of each fractal.
package coords

// Julia maps pixel (x, y) of a w×h grid linearly onto the square [-2, 2]×[-2, 2].
// Pixel (0, 0) is (-2, -2); the far edge stops one pixel short of 2.
func Julia(x, y, w, h int) (cx, cy float32) {
	scaleX := 4 / float32(w)
	scaleY := 4 / float32(h)

	return float32(x)*scaleX - 2, float32(y)*scaleY - 2
}

// Lyapunov maps pixel (x, y) of a w×h grid linearly onto [2, 4]×[2, 4].
func Lyapunov(x, y, w, h int) (a, b float32) {
	a = 2 + (float32(x)/float32(w))*2
	b = 2 + (float32(y)/float32(h))*2

	return a, b
}
