package testutil

import "math/rand"

// tutorialHRF is the 20-sample response shape used throughout the tests.
var tutorialHRF = []float64{
	0, 0, 1, 5, 8, 9.2, 9, 7, 4, 2,
	0, -1, -1, -0.8, -0.7, -0.5, -0.3, -0.1, 0, 0,
}

// TutorialHRF returns a fresh copy of the 20-sample tutorial kernel.
func TutorialHRF() []float64 {
	out := make([]float64, len(tutorialHRF))
	copy(out, tutorialHRF)
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
// Out-of-range positions yield all zeros.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Zeros returns a slice of length n filled with 0.0.
func Zeros(n int) []float64 {
	return make([]float64, n)
}
