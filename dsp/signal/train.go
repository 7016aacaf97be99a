package signal

import (
	"fmt"

	"github.com/cwbudde/algo-hrf/dsp/core"
)

// ImpulseTrain returns a sequence of the given length with 1 at every onset
// index and 0 elsewhere. No onsets yields an all-zero sequence.
//
// Onsets form a set: naming the same index twice still yields 1.
// Every onset must lie in [0, length-1].
func ImpulseTrain(length int, onsets ...int) ([]float64, error) {
	if err := validateOnsets(length, onsets); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	for _, idx := range onsets {
		out[idx] = 1
	}
	return out, nil
}

// BoxcarTrain returns a sequence of the given length that is 1 for duration
// samples from every onset and 0 elsewhere. Blocks running past the end are
// truncated, and overlapping blocks stay at 1.
func BoxcarTrain(length, duration int, onsets ...int) ([]float64, error) {
	if duration < 1 {
		return nil, fmt.Errorf("signal: boxcar duration must be >= 1: %d: %w", duration, core.ErrInvalidInput)
	}
	if err := validateOnsets(length, onsets); err != nil {
		return nil, err
	}

	out := make([]float64, length)
	for _, idx := range onsets {
		end := min(idx+duration, length)
		for i := idx; i < end; i++ {
			out[i] = 1
		}
	}
	return out, nil
}

func validateOnsets(length int, onsets []int) error {
	if length < 1 {
		return fmt.Errorf("signal: train length must be >= 1: %d: %w", length, core.ErrInvalidInput)
	}
	for _, idx := range onsets {
		if idx < 0 || idx >= length {
			return fmt.Errorf("signal: onset %d outside [0, %d]: %w", idx, length-1, core.ErrIndexOutOfRange)
		}
	}
	return nil
}
