package hrf

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hrf/dsp/conv"
	"github.com/cwbudde/algo-hrf/dsp/signal"
)

// reuseThreshold is the kernel length above which PredictEach shares one
// FFT convolver across trains.
const reuseThreshold = 64

// Predict returns the full response to train: train convolved with kernel,
// of length len(train)+len(kernel)-1.
func Predict(train, kernel []float64) ([]float64, error) {
	return conv.Convolve(train, kernel)
}

// EventResponse builds an impulse train of the given length with the given
// onsets and returns its predicted response.
func EventResponse(length int, kernel []float64, onsets ...int) ([]float64, error) {
	train, err := signal.ImpulseTrain(length, onsets...)
	if err != nil {
		return nil, err
	}
	return Predict(train, kernel)
}

// PredictSum sums the trains first and convolves the combined train once.
func PredictSum(kernel []float64, trains ...[]float64) ([]float64, error) {
	combined, err := conv.Sum(trains...)
	if err != nil {
		return nil, err
	}
	return Predict(combined, kernel)
}

// PredictEach convolves every train with kernel separately.
func PredictEach(kernel []float64, trains ...[]float64) ([][]float64, error) {
	if len(trains) == 0 {
		return nil, conv.ErrNoSequences
	}
	if len(kernel) == 0 {
		return nil, conv.ErrEmptyKernel
	}

	var oa *conv.OverlapAdd
	if len(kernel) > reuseThreshold {
		var err error
		if oa, err = conv.NewOverlapAdd(kernel, 0); err != nil {
			return nil, err
		}
	}

	out := make([][]float64, len(trains))
	for i, train := range trains {
		var (
			resp []float64
			err  error
		)
		if oa != nil {
			resp, err = oa.Process(train)
		} else {
			resp, err = conv.Convolve(train, kernel)
		}
		if err != nil {
			return nil, fmt.Errorf("hrf: train %d: %w", i, err)
		}
		out[i] = resp
	}
	return out, nil
}

// Superpose convolves every train separately and sums the responses.
// By linearity it equals PredictSum up to rounding.
func Superpose(kernel []float64, trains ...[]float64) ([]float64, error) {
	responses, err := PredictEach(kernel, trains...)
	if err != nil {
		return nil, err
	}
	return conv.Sum(responses...)
}

// CheckLinearity returns the largest absolute difference between PredictSum
// and Superpose for the given trains.
func CheckLinearity(kernel []float64, trains ...[]float64) (float64, error) {
	summed, err := PredictSum(kernel, trains...)
	if err != nil {
		return 0, err
	}
	superposed, err := Superpose(kernel, trains...)
	if err != nil {
		return 0, err
	}
	if len(summed) != len(superposed) {
		return 0, fmt.Errorf("%w: %d vs %d", conv.ErrLengthMismatch, len(summed), len(superposed))
	}

	maxDiff := 0.0
	for i := range summed {
		maxDiff = math.Max(maxDiff, math.Abs(summed[i]-superposed[i]))
	}
	return maxDiff, nil
}
