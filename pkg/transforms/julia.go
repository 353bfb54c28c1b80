package transforms

// Julia is the quadratic map z² + C.
type Julia struct {
	C complex64
}

func (j Julia) Next(z complex64) complex64 {
	return z*z + j.C
}
