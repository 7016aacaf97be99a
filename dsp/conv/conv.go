package conv

import (
	"fmt"

	"github.com/cwbudde/algo-hrf/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions. Each wraps the matching
// core error so callers can test against either.
var (
	ErrEmptyInput     = fmt.Errorf("conv: empty input: %w", core.ErrInvalidInput)
	ErrEmptyKernel    = fmt.Errorf("conv: empty kernel: %w", core.ErrInvalidInput)
	ErrNoSequences    = fmt.Errorf("conv: no sequences: %w", core.ErrInvalidInput)
	ErrLengthMismatch = fmt.Errorf("conv: buffer length mismatch: %w", core.ErrLengthMismatch)
)

// directThreshold is the longest kernel Convolve handles in the time domain.
const directThreshold = 64

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input,
	// centred on the full result.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid

	// ModeCausal returns the first len(a) samples of the full result: the
	// response truncated to the length of the stimulus sequence.
	ModeCausal
)

// String returns the mode name as used on the command line.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	case ModeCausal:
		return "causal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "full":
		return ModeFull, nil
	case "same":
		return ModeSame, nil
	case "valid":
		return ModeValid, nil
	case "causal":
		return ModeCausal, nil
	default:
		return ModeFull, fmt.Errorf("conv: unknown mode %q: %w", s, core.ErrInvalidInput)
	}
}

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm suitable for short kernels.
// For longer kernels, use FFT-based methods like OverlapAdd.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	if err := DirectTo(result, a, b); err != nil {
		return nil, err
	}
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1. Any previous content is overwritten.
func DirectTo(dst, a, b []float64) error {
	if len(a) == 0 {
		return ErrEmptyInput
	}
	if len(b) == 0 {
		return ErrEmptyKernel
	}

	n := len(a)
	m := len(b)
	if len(dst) != n+m-1 {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, n+m-1, len(dst))
	}

	core.Zero(dst)

	// Use SIMD-accelerated path for kernels >= 4 samples
	const simdThreshold = 4
	if m >= simdThreshold {
		directToSIMD(dst, a, b, n, m)
	} else {
		directToScalar(dst, a, b, n, m)
	}
	return nil
}

// directToScalar performs scalar convolution for small kernels.
func directToScalar(dst, a, b []float64, n, m int) {
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// directToSIMD scatters a scaled copy of b for every sample of a.
// Zero samples are not skipped so NaN and Inf in b propagate as in the
// scalar path.
func directToSIMD(dst, a, b []float64, n, m int) {
	temp := make([]float64, m)

	for i := 0; i < n; i++ {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve performs full linear convolution with automatic algorithm selection.
// The result has length len(a) + len(b) - 1 and does not alias either input.
//
// The longer argument is always treated as the signal, so Convolve(a, b) and
// Convolve(b, a) run the same computation whenever the lengths differ.
// Kernels up to 64 samples use direct convolution, longer ones FFT overlap-add.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode performs convolution with specified output mode.
// Modes other than ModeFull return a sub-slice of the full result.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

// Trim cuts a full convolution result down to mode. signalLen and kernelLen
// are the lengths of the two convolved sequences, in the order they were
// passed, and full must have length signalLen+kernelLen-1.
func Trim(full []float64, signalLen, kernelLen int, mode Mode) ([]float64, error) {
	if signalLen < 1 || kernelLen < 1 {
		return nil, ErrEmptyInput
	}
	if len(full) != signalLen+kernelLen-1 {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, signalLen+kernelLen-1, len(full))
	}
	return trimToMode(full, signalLen, kernelLen, mode), nil
}

// trimToMode extracts the appropriate portion of a full convolution result.
func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeFull:
		return full
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	case ModeCausal:
		return full[:lenA]
	default:
		return full
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
