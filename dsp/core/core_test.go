package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := []float64{1, 2, 3}
	dst := Clone(src)
	dst[0] = 42

	if src[0] != 1 {
		t.Fatalf("src mutated through clone: %v", src)
	}
	if got := Clone(nil); got == nil || len(got) != 0 {
		t.Fatalf("Clone(nil) = %#v, want empty non-nil", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 1e-13, 0) {
		t.Fatal("expected default epsilon to apply")
	}
}

func TestApplySamplingOptions(t *testing.T) {
	cfg := ApplySamplingOptions(WithStep(0.5), WithDuration(20))
	if cfg.Step != 0.5 {
		t.Fatalf("step = %v, want 0.5", cfg.Step)
	}
	if cfg.Duration != 20 {
		t.Fatalf("duration = %v, want 20", cfg.Duration)
	}
	if cfg.Samples() != 40 {
		t.Fatalf("samples = %d, want 40", cfg.Samples())
	}
}

func TestInvalidSamplingOptionsIgnored(t *testing.T) {
	cfg := ApplySamplingOptions(WithStep(0), WithDuration(-1), nil)
	def := DefaultSamplingConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestSamplesRoundsFloatSteps(t *testing.T) {
	cfg := SamplingConfig{Step: 0.1, Duration: 3}
	if got := cfg.Samples(); got != 30 {
		t.Fatalf("samples = %d, want 30", got)
	}

	short := SamplingConfig{Step: 2, Duration: 1}
	if got := short.Samples(); got != 1 {
		t.Fatalf("samples = %d, want 1", got)
	}
}

func TestErrorsWrap(t *testing.T) {
	err := fmt.Errorf("signal: onset 70: %w", ErrIndexOutOfRange)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("errors.Is failed for %v", err)
	}
	if errors.Is(err, ErrLengthMismatch) {
		t.Fatal("unexpected match against ErrLengthMismatch")
	}
}
