// Package lyapunov computes Lyapunov exponents of the logistic map forced by a
// periodic choice between two coefficients.
package lyapunov

import (
	"math"

	"github.com/willbeason/fract/pkg/transforms"
)

// Seed is the starting point of every trajectory.
const Seed = 0.5

// Scratch holds the per-step working sequences for one exponent evaluation.
// A Scratch belongs to a single goroutine and may be reused for any number of
// evaluations with the same or a smaller iteration budget.
type Scratch struct {
	trajectory []float32
	forcing    []float32
	slope      []float32
}

// NewScratch allocates scratch space for maxIterations steps.
func NewScratch(maxIterations uint16) *Scratch {
	n := int(maxIterations)
	return &Scratch{
		trajectory: make([]float32, n),
		forcing:    make([]float32, n),
		slope:      make([]float32, n),
	}
}

func (s *Scratch) fits(maxIterations uint16) bool {
	return s != nil && len(s.trajectory) >= int(maxIterations)
}

// Exponent returns the Lyapunov exponent of the forced logistic map at (a, b).
//
// With N = maxIterations and r(n) = p.R(n, a, b):
//
//	x_0 = 0.5
//	x_i = r(i-1) x_{i-1} (1 - x_{i-1})       for 1 <= i < N
//	λ   = (1/N) Σ ln(|r(i)| |1 - 2 x_i|)    for 1 <= i < N
//
// Terms with a zero product contribute -Inf and negative infinities or NaNs
// are carried into the result unchanged.
//
// s is reused when it is large enough; otherwise a new Scratch is allocated.
func Exponent(a, b float32, p Pattern, maxIterations uint16, s *Scratch) float32 {
	if maxIterations == 0 {
		return 0
	}
	if !s.fits(maxIterations) {
		s = NewScratch(maxIterations)
	}

	n := int(maxIterations)
	x := s.trajectory[:n]
	m := s.forcing[:n]
	d := s.slope[:n]

	x[0] = Seed
	for i := 1; i < n; i++ {
		x[i] = transforms.Logistic{R: p.R(i-1, a, b)}.Next(x[i-1])
	}

	for i := 1; i < n; i++ {
		m[i] = abs32(p.R(i, a, b))
	}

	for i := 1; i < n; i++ {
		d[i] = abs32(1 - 2*x[i])
	}

	var sum float32
	for i := 1; i < n; i++ {
		sum += float32(math.Log(float64(m[i] * d[i])))
	}

	return sum / float32(n)
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
