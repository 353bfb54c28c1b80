package transforms

// Logistic is the logistic map R·x·(1 - x).
type Logistic struct {
	R float32
}

func (l Logistic) Next(x float32) float32 {
	return l.R * x * (1 - x)
}
