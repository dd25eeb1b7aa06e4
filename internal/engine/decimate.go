package engine

// Decimate keeps every DecimationFactor-th sample starting at index 0,
// halving the effective sample rate. The result has ceil(n/2) samples and
// its time stamps are a subsequence of the input's.
func Decimate(s Series) Series {
	n := (s.Len() + DecimationFactor - 1) / DecimationFactor
	out := Series{
		T: make([]float64, n),
		Y: make([]float64, n),
	}
	for i := range n {
		out.T[i] = s.T[i*DecimationFactor]
		out.Y[i] = s.Y[i*DecimationFactor]
	}
	return out
}
