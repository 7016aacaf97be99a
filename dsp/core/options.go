package core

import "math"

// SamplingConfig describes how a continuous-time response is sampled.
type SamplingConfig struct {
	// Step is the sample spacing in seconds (the repetition time for
	// scan-rate kernels, or a fraction of it for micro-time kernels).
	Step float64

	// Duration is the length of the sampled window in seconds.
	Duration float64
}

// SamplingOption mutates a SamplingConfig.
type SamplingOption func(*SamplingConfig)

// DefaultSamplingConfig returns one-second sampling over a 32 s window,
// long enough to capture the undershoot of a canonical HRF.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Step:     1,
		Duration: 32,
	}
}

// WithStep sets the sample spacing in seconds.
func WithStep(step float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if step > 0 {
			cfg.Step = step
		}
	}
}

// WithDuration sets the sampled window length in seconds.
func WithDuration(duration float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if duration > 0 {
			cfg.Duration = duration
		}
	}
}

// ApplySamplingOptions applies zero or more options to the default config.
func ApplySamplingOptions(opts ...SamplingOption) SamplingConfig {
	cfg := DefaultSamplingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Samples returns the number of samples covering [0, Duration), at least 1.
func (c SamplingConfig) Samples() int {
	if c.Step <= 0 || c.Duration <= 0 {
		return 1
	}
	n := int(math.Floor(c.Duration/c.Step + 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}
