package transforms

// A ComplexTransform iterates a point of the complex plane.
type ComplexTransform interface {
	Next(z complex64) complex64
}

// A RealTransform iterates a point on the real line.
type RealTransform interface {
	Next(x float32) float32
}

// Norm2 is the squared magnitude of z, re² + im².
//
// Escape checks compare against the squared threshold to avoid the square root.
func Norm2(z complex64) float32 {
	re, im := real(z), imag(z)
	return re*re + im*im
}

var (
	_ ComplexTransform = Julia{}
	_ RealTransform    = Logistic{}
)
