package hrf

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-hrf/dsp/core"
)

// Kernel names accepted by ByName.
const (
	KernelTutorial  = "tutorial"
	KernelCanonical = "canonical"
)

// tutorial is sampled at one value per time step: a rise to a peak of 9.2
// five steps after the stimulus, then an undershoot below baseline.
var tutorial = [...]float64{
	0, 0, 1, 5, 8, 9.2, 9, 7, 4, 2,
	0, -1, -1, -0.8, -0.7, -0.5, -0.3, -0.1, 0, 0,
}

// Tutorial returns the 20-sample teaching HRF. Each call returns a fresh copy.
func Tutorial() []float64 {
	return core.Clone(tutorial[:])
}

// DoubleGammaParams shapes the canonical HRF. Delays and dispersions are in
// seconds.
type DoubleGammaParams struct {
	PeakDelay            float64
	UndershootDelay      float64
	PeakDispersion       float64
	UndershootDispersion float64

	// Ratio is peak amplitude over undershoot amplitude.
	Ratio float64

	// Onset shifts the whole response later by this many seconds.
	Onset float64
}

// DefaultDoubleGammaParams returns the SPM canonical HRF parameters.
func DefaultDoubleGammaParams() DoubleGammaParams {
	return DoubleGammaParams{
		PeakDelay:            6,
		UndershootDelay:      16,
		PeakDispersion:       1,
		UndershootDispersion: 1,
		Ratio:                6,
		Onset:                0,
	}
}

// Validate reports parameters that cannot describe a response.
func (p DoubleGammaParams) Validate() error {
	switch {
	case p.PeakDelay <= 0, p.UndershootDelay <= 0:
		return fmt.Errorf("hrf: delays must be > 0: %w", core.ErrInvalidInput)
	case p.PeakDispersion <= 0, p.UndershootDispersion <= 0:
		return fmt.Errorf("hrf: dispersions must be > 0: %w", core.ErrInvalidInput)
	case p.Ratio <= 0:
		return fmt.Errorf("hrf: ratio must be > 0: %f: %w", p.Ratio, core.ErrInvalidInput)
	case p.Onset < 0:
		return fmt.Errorf("hrf: onset must be >= 0: %f: %w", p.Onset, core.ErrInvalidInput)
	}
	return nil
}

// DoubleGamma samples the difference of two gamma densities,
//
//	h(t) = g(t; a1, b1) - g(t; a2, b2)/ratio,
//
// with shape a = delay/dispersion and scale b = dispersion, every cfg.Step
// seconds over cfg.Duration seconds. The result is scaled to unit sum so that
// convolving a sustained stimulus of amplitude 1 settles at amplitude 1.
func DoubleGamma(params DoubleGammaParams, opts ...core.SamplingOption) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	cfg := core.ApplySamplingOptions(opts...)
	n := cfg.Samples()

	peakShape := params.PeakDelay / params.PeakDispersion
	underShape := params.UndershootDelay / params.UndershootDispersion

	out := make([]float64, n)
	sum := 0.0
	for i := range out {
		t := float64(i)*cfg.Step - params.Onset
		v := gammaPDF(t, peakShape, params.PeakDispersion) -
			gammaPDF(t, underShape, params.UndershootDispersion)/params.Ratio
		out[i] = v
		sum += v
	}

	if sum == 0 || math.IsNaN(sum) {
		return nil, fmt.Errorf("hrf: %d samples of %gs do not cover the response: %w", n, cfg.Step, core.ErrInvalidInput)
	}
	for i := range out {
		out[i] /= sum
	}
	return out, nil
}

// gammaPDF evaluates the gamma density with the given shape and scale.
// It is 0 for t <= 0.
func gammaPDF(t, shape, scale float64) float64 {
	if t <= 0 {
		return 0
	}
	lg, _ := math.Lgamma(shape)
	return math.Exp((shape-1)*math.Log(t) - t/scale - lg - shape*math.Log(scale))
}

// ByName returns a kernel by name. The sampling options apply to
// KernelCanonical only; the tutorial kernel has a fixed sampling.
func ByName(name string, opts ...core.SamplingOption) ([]float64, error) {
	switch canonicalName(name) {
	case KernelTutorial:
		return Tutorial(), nil
	case KernelCanonical:
		return DoubleGamma(DefaultDoubleGammaParams(), opts...)
	default:
		return nil, fmt.Errorf("hrf: unknown kernel %q: %w", name, core.ErrInvalidInput)
	}
}

// Known reports whether ByName accepts name.
func Known(name string) bool {
	return canonicalName(name) != ""
}

// canonicalName maps the accepted spellings of a kernel name to its
// constant, or to "" when the name is unknown.
func canonicalName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case KernelTutorial, "":
		return KernelTutorial
	case KernelCanonical, "spm", "double-gamma":
		return KernelCanonical
	default:
		return ""
	}
}
