package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-hrf/dsp/conv"
	"github.com/cwbudde/algo-hrf/dsp/core"
	"github.com/cwbudde/algo-hrf/internal/testutil"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", map[string]string{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	def := Default()
	if cfg.Kernel != def.Kernel || cfg.Length != def.Length || cfg.Mode != def.Mode || cfg.LogLevel != def.LogLevel {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
	if len(cfg.Conditions) != 1 || cfg.Conditions[0].Onsets[0] != 10 {
		t.Fatalf("unexpected default conditions: %#v", cfg.Conditions)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
kernel: canonical
step: 0.5
duration: 30
length: 200
mode: causal
conditions:
  - name: faces
    onsets: [10, 50]
  - name: houses
    onsets: [100]
    duration: 20
    amplitude: 0.5
`)

	cfg, err := Load(path, map[string]string{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Kernel != "canonical" || cfg.Step != 0.5 || cfg.Duration != 30 || cfg.Length != 200 {
		t.Fatalf("unexpected scalar settings: %#v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q, want default info", cfg.LogLevel)
	}
	if len(cfg.Conditions) != 2 {
		t.Fatalf("got %d conditions, want 2", len(cfg.Conditions))
	}
	if cfg.Conditions[1].Duration != 20 || cfg.Conditions[1].Amplitude != 0.5 {
		t.Fatalf("unexpected second condition: %#v", cfg.Conditions[1])
	}

	mode, err := cfg.OutputMode()
	if err != nil || mode != conv.ModeCausal {
		t.Fatalf("OutputMode() = %v, %v; want causal", mode, err)
	}

	kernel, err := cfg.BuildKernel()
	if err != nil {
		t.Fatalf("BuildKernel() error = %v", err)
	}
	if len(kernel) != 60 {
		t.Fatalf("kernel len = %d, want 60", len(kernel))
	}

	trains, err := cfg.BuildTrains()
	if err != nil {
		t.Fatalf("BuildTrains() error = %v", err)
	}
	if trains[0][10] != 1 || trains[0][50] != 1 || trains[0][11] != 0 {
		t.Fatalf("unexpected event train")
	}
	if trains[1][99] != 0 || trains[1][100] != 0.5 || trains[1][119] != 0.5 || trains[1][120] != 0 {
		t.Fatalf("unexpected block train")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "kernel: canonical\nlength: 100\n")

	cfg, err := Load(path, map[string]string{
		"HRF_KERNEL":    "tutorial",
		"HRF_LENGTH":    "61",
		"HRF_LOG_LEVEL": "debug",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Kernel != "tutorial" || cfg.Length != 61 || cfg.LogLevel != "debug" {
		t.Fatalf("env overrides not applied: %#v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), map[string]string{}); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := writeConfig(t, "length: [1, 2\n")
	if _, err := Load(path, map[string]string{}); err == nil {
		t.Fatal("expected error for malformed YAML")
	}

	if _, err := Load("", map[string]string{"HRF_LENGTH": "many"}); err == nil {
		t.Fatal("expected error for non-numeric HRF_LENGTH")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero length", func(c *Config) { c.Length = 0 }},
		{"unknown mode", func(c *Config) { c.Mode = "circular" }},
		{"unknown kernel", func(c *Config) { c.Kernel = "boxcar" }},
		{"negative step", func(c *Config) { c.Step = -1 }},
		{"negative peak", func(c *Config) { c.Peak = -1 }},
		{"negative duration", func(c *Config) { c.Conditions = []Condition{{Onsets: []int{1}, Duration: -2}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidInput) {
				t.Fatalf("Validate() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestValidateLeavesSamplingToBuildKernel(t *testing.T) {
	cfg := Default()
	cfg.Kernel = "canonical"
	cfg.Duration = 0.5

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	// A single sample at t=0 carries no response.
	if _, err := cfg.BuildKernel(); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("BuildKernel() error = %v, want ErrInvalidInput", err)
	}
}

func TestBuildKernelPeak(t *testing.T) {
	cfg := Default()
	cfg.Peak = 1

	kernel, err := cfg.BuildKernel()
	if err != nil {
		t.Fatalf("BuildKernel() error = %v", err)
	}
	// The tutorial kernel peaks at 9.2, five samples in.
	if !core.NearlyEqual(kernel[5], 1, 1e-12) {
		t.Fatalf("kernel[5] = %v, want 1", kernel[5])
	}

	cfg.Peak = 0
	kernel, err = cfg.BuildKernel()
	if err != nil {
		t.Fatalf("BuildKernel() error = %v", err)
	}
	if kernel[5] != 9.2 {
		t.Fatalf("kernel[5] = %v, want 9.2", kernel[5])
	}
}

func TestBuildTrainsOutOfRange(t *testing.T) {
	cfg := Default()
	cfg.Conditions = []Condition{{Name: "late", Onsets: []int{61}}}

	_, err := cfg.BuildTrains()
	if !errors.Is(err, core.ErrIndexOutOfRange) {
		t.Fatalf("BuildTrains() error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestConditionTrain(t *testing.T) {
	events, err := Condition{Onsets: []int{0, 4}}.Train(5)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, events, []float64{1, 0, 0, 0, 1}, 0)

	scaled, err := Condition{Onsets: []int{2}, Amplitude: 3}.Train(4)
	if err != nil {
		t.Fatalf("Train() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, scaled, []float64{0, 0, 3, 0}, 0)
}

func TestConditionLabel(t *testing.T) {
	if got := (Condition{Name: "faces"}).Label(0); got != "faces" {
		t.Fatalf("Label() = %q, want faces", got)
	}
	if got := (Condition{}).Label(2); got != "condition-3" {
		t.Fatalf("Label() = %q, want condition-3", got)
	}
}
