package coords

import (
	"math"
	"testing"
)

func TestJuliaBounds(t *testing.T) {
	const w, h = 500, 400

	cx, cy := Julia(0, 0, w, h)
	if cx != -2 || cy != -2 {
		t.Errorf("Julia(0, 0) = (%v, %v), want (-2, -2)", cx, cy)
	}

	cx, cy = Julia(w-1, h-1, w, h)
	pxW, pxH := float32(4.0/w), float32(4.0/h)
	if cx >= 2 || 2-cx > pxW+1e-5 {
		t.Errorf("Julia(W-1, _) x = %v, want within one pixel (%v) below 2", cx, pxW)
	}
	if cy >= 2 || 2-cy > pxH+1e-5 {
		t.Errorf("Julia(_, H-1) y = %v, want within one pixel (%v) below 2", cy, pxH)
	}
}

func TestJuliaCenter(t *testing.T) {
	cx, cy := Julia(250, 250, 500, 500)
	if math.Abs(float64(cx)) > 1e-6 || math.Abs(float64(cy)) > 1e-6 {
		t.Errorf("Julia(250, 250) = (%v, %v), want (0, 0)", cx, cy)
	}
}

func TestLyapunovBounds(t *testing.T) {
	const w, h = 500, 500

	a, b := Lyapunov(0, 0, w, h)
	if a != 2 || b != 2 {
		t.Errorf("Lyapunov(0, 0) = (%v, %v), want (2, 2)", a, b)
	}

	a, b = Lyapunov(w-1, h-1, w, h)
	px := float64(2.0 / w)
	if a >= 4 || 4-float64(a) > px+1e-5 {
		t.Errorf("Lyapunov(W-1, _) a = %v, want within one pixel below 4", a)
	}
	if b >= 4 || 4-float64(b) > px+1e-5 {
		t.Errorf("Lyapunov(_, H-1) b = %v, want within one pixel below 4", b)
	}
}

func TestMonotonic(t *testing.T) {
	const w, h = 37, 53

	prevX, prevA := float32(math.Inf(-1)), float32(math.Inf(-1))
	for x := range w {
		cx, _ := Julia(x, 0, w, h)
		a, _ := Lyapunov(x, 0, w, h)
		if cx <= prevX || a <= prevA {
			t.Fatalf("mapping not increasing at x=%d: julia %v <= %v or lyapunov %v <= %v", x, cx, prevX, a, prevA)
		}
		prevX, prevA = cx, a
	}
}
