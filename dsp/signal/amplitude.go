package signal

import (
	"fmt"

	"github.com/cwbudde/algo-hrf/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Scale multiplies every sample by gain and returns a new slice.
// Use it to weight a condition's train before summing trains.
func Scale(data []float64, gain float64) []float64 {
	out := make([]float64, len(data))
	if len(data) == 0 {
		return out
	}
	vecmath.ScaleBlock(out, data, gain)
	return out
}

// Normalize scales data to target peak amplitude and returns a new slice.
// An all-zero input stays all zero.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f: %w", targetPeak, core.ErrInvalidInput)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty: %w", core.ErrInvalidInput)
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
