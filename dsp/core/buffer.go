package core

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Clone returns a copy of seq that shares no storage with it.
// A nil or empty seq yields an empty, non-nil slice.
func Clone(seq []float64) []float64 {
	out := make([]float64, len(seq))
	copy(out, seq)
	return out
}
