package conv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Sum adds sequences element-wise: result[i] = Σ_s s[i].
// All sequences must have the length of the first one; at least one
// sequence is required. The inputs are not modified.
//
// Summation is additive, so coinciding onsets of two impulse trains yield 2.
func Sum(seqs ...[]float64) ([]float64, error) {
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}

	out := make([]float64, len(seqs[0]))
	if err := SumTo(out, seqs...); err != nil {
		return nil, err
	}
	return out, nil
}

// SumTo writes the element-wise sum of seqs into dst.
// dst must have the common length of the sequences and must not alias any
// sequence after the first.
func SumTo(dst []float64, seqs ...[]float64) error {
	if len(seqs) == 0 {
		return ErrNoSequences
	}

	n := len(seqs[0])
	for i, s := range seqs {
		if len(s) != n {
			return fmt.Errorf("%w: sequence %d has length %d, want %d", ErrLengthMismatch, i, len(s), n)
		}
	}
	if len(dst) != n {
		return fmt.Errorf("%w: destination has length %d, want %d", ErrLengthMismatch, len(dst), n)
	}
	if n == 0 {
		return nil
	}

	copy(dst, seqs[0])
	for _, s := range seqs[1:] {
		vecmath.AddBlockInPlace(dst, s)
	}
	return nil
}
