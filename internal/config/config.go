// Package config loads hrfconv run settings from a YAML file and the
// environment. Environment variables override the file, and command-line
// flags override both.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-hrf/dsp/conv"
	"github.com/cwbudde/algo-hrf/dsp/core"
	"github.com/cwbudde/algo-hrf/dsp/hrf"
	"github.com/cwbudde/algo-hrf/dsp/signal"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "HRF_"

// Config contains all settings for one convolution run.
type Config struct {
	// Kernel names the HRF: "tutorial" or "canonical".
	Kernel string `yaml:"kernel" env:"KERNEL"`

	// Step is the canonical kernel's sample spacing in seconds.
	Step float64 `yaml:"step" env:"STEP"`

	// Duration is the canonical kernel's window in seconds.
	Duration float64 `yaml:"duration" env:"DURATION"`

	// Peak rescales the kernel to this peak amplitude. 0 keeps it as is.
	Peak float64 `yaml:"peak" env:"PEAK"`

	// Length is the number of samples in every stimulus train.
	Length int `yaml:"length" env:"LENGTH"`

	// Mode is the output mode: "full", "same", "valid" or "causal".
	Mode string `yaml:"mode" env:"MODE"`

	// LogLevel is "error", "warn", "info", "debug" or "trace".
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// Conditions are the stimulus trains of the run. They come from the
	// file or from flags only.
	Conditions []Condition `yaml:"conditions" env:"-"`
}

// Condition is one experimental condition: a set of onsets sharing a block
// duration and an amplitude.
type Condition struct {
	Name   string `yaml:"name"`
	Onsets []int  `yaml:"onsets"`

	// Duration is the block length in samples. 0 and 1 both mean events.
	Duration int `yaml:"duration,omitempty"`

	// Amplitude weights the train. 0 means 1.
	Amplitude float64 `yaml:"amplitude,omitempty"`
}

// Default returns a Config reproducing the single-event tutorial run.
func Default() *Config {
	return &Config{
		Kernel:   hrf.KernelTutorial,
		Step:     1,
		Duration: 32,
		Length:   61,
		Mode:     conv.ModeFull.String(),
		LogLevel: "info",

		Conditions: []Condition{
			{Name: "event", Onsets: []int{10}},
		},
	}
}

// Load reads path (if non-empty) over the defaults, then applies environment
// overrides from environ. A nil environ reads the process environment.
func Load(path string, environ map[string]string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate reports settings that cannot produce a run. It does not sample
// the kernel; BuildKernel reports sampling that misses the response.
func (c *Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("config: length must be >= 1: %d: %w", c.Length, core.ErrInvalidInput)
	}
	if c.Peak < 0 {
		return fmt.Errorf("config: peak must be >= 0: %g: %w", c.Peak, core.ErrInvalidInput)
	}
	if _, err := conv.ParseMode(c.Mode); err != nil {
		return err
	}
	if !hrf.Known(c.Kernel) {
		return fmt.Errorf("config: unknown kernel %q: %w", c.Kernel, core.ErrInvalidInput)
	}
	if c.Step < 0 || c.Duration < 0 {
		return fmt.Errorf("config: step and duration must be >= 0: %w", core.ErrInvalidInput)
	}
	for i, cond := range c.Conditions {
		if cond.Duration < 0 {
			return fmt.Errorf("config: condition %d duration must be >= 0: %w", i, core.ErrInvalidInput)
		}
	}
	return nil
}

// OutputMode returns the parsed Mode.
func (c *Config) OutputMode() (conv.Mode, error) {
	return conv.ParseMode(c.Mode)
}

// BuildKernel returns the configured HRF, rescaled to Peak when set.
func (c *Config) BuildKernel() ([]float64, error) {
	kernel, err := hrf.ByName(c.Kernel, core.WithStep(c.Step), core.WithDuration(c.Duration))
	if err != nil {
		return nil, err
	}
	if c.Peak > 0 {
		return signal.Normalize(kernel, c.Peak)
	}
	return kernel, nil
}

// BuildTrains returns one stimulus train of c.Length samples per condition.
func (c *Config) BuildTrains() ([][]float64, error) {
	trains := make([][]float64, 0, len(c.Conditions))
	for i, cond := range c.Conditions {
		train, err := cond.Train(c.Length)
		if err != nil {
			return nil, fmt.Errorf("condition %d (%s): %w", i, cond.Label(i), err)
		}
		trains = append(trains, train)
	}
	return trains, nil
}

// Train builds the condition's stimulus train.
func (cond Condition) Train(length int) ([]float64, error) {
	var (
		train []float64
		err   error
	)
	if cond.Duration > 1 {
		train, err = signal.BoxcarTrain(length, cond.Duration, cond.Onsets...)
	} else {
		train, err = signal.ImpulseTrain(length, cond.Onsets...)
	}
	if err != nil {
		return nil, err
	}

	if cond.Amplitude != 0 && cond.Amplitude != 1 {
		train = signal.Scale(train, cond.Amplitude)
	}
	return train, nil
}

// Label returns the condition name, or a positional name when unset.
func (cond Condition) Label(i int) string {
	if cond.Name != "" {
		return cond.Name
	}
	return fmt.Sprintf("condition-%d", i+1)
}
