package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd implements FFT-based convolution using the overlap-add method.
// This is efficient for convolving long signals with longer kernels, such as
// HRFs sampled at sub-second resolution.
//
// The algorithm:
// 1. Divide input signal into non-overlapping blocks
// 2. Zero-pad each block and the kernel to FFT size
// 3. Convolve via FFT multiplication in frequency domain
// 4. Overlap-add the results to form the output
//
// An OverlapAdd holds scratch buffers and must not be used by more than one
// goroutine at a time.
type OverlapAdd struct {
	// Kernel in frequency domain
	kernelFFT []complex128

	kernelLen int // Original kernel length
	blockSize int // Input block size
	fftSize   int // FFT size (blockSize + kernelLen - 1, rounded to power of 2)

	plan *algofft.Plan[complex128]

	// Scratch buffers
	inputPadded  []complex128
	outputPadded []complex128
}

// NewOverlapAdd creates a new overlap-add convolver for the given kernel.
// blockSize determines how the input signal is segmented.
// If blockSize is 0, an automatic size is chosen based on kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	kernelLen := len(kernel)

	if blockSize <= 0 {
		// Rule of thumb: block size roughly equal to or larger than kernel
		blockSize = nextPowerOf2(kernelLen)
		if blockSize < 256 {
			blockSize = 256
		}
	}

	// FFT size must accommodate block + kernel - 1 for linear convolution
	fftSize := nextPowerOf2(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT:    make([]complex128, fftSize),
		kernelLen:    kernelLen,
		blockSize:    blockSize,
		fftSize:      fftSize,
		plan:         plan,
		inputPadded:  make([]complex128, fftSize),
		outputPadded: make([]complex128, fftSize),
	}

	kernelPadded := make([]complex128, fftSize)
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(oa.kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// Process convolves the input signal with the kernel.
// Returns the full linear convolution result of length len(input)+KernelLen()-1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	output := make([]float64, len(input)+oa.kernelLen-1)
	if err := oa.accumulate(output, input); err != nil {
		return nil, err
	}
	return output, nil
}

// ProcessTo convolves input and writes to pre-allocated output.
// Output must have length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) ProcessTo(output, input []float64) error {
	if len(input) == 0 {
		return ErrEmptyInput
	}

	expectedLen := len(input) + oa.kernelLen - 1
	if len(output) != expectedLen {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, expectedLen, len(output))
	}

	for i := range output {
		output[i] = 0
	}
	return oa.accumulate(output, input)
}

// accumulate overlap-adds the block convolutions of input into output,
// which must be zeroed and sized for the full result.
func (oa *OverlapAdd) accumulate(output, input []float64) error {
	outputLen := len(output)
	numBlocks := (len(input) + oa.blockSize - 1) / oa.blockSize

	for blockIdx := 0; blockIdx < numBlocks; blockIdx++ {
		start := blockIdx * oa.blockSize
		end := start + oa.blockSize
		if end > len(input) {
			end = len(input)
		}
		blockLen := end - start

		for i := range oa.inputPadded {
			oa.inputPadded[i] = 0
		}
		for i := 0; i < blockLen; i++ {
			oa.inputPadded[i] = complex(input[start+i], 0)
		}

		if err := oa.plan.Forward(oa.inputPadded, oa.inputPadded); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range oa.outputPadded {
			oa.outputPadded[i] = oa.inputPadded[i] * oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(oa.outputPadded, oa.outputPadded); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		// A block of length L convolved with a kernel of length M spans L+M-1 samples.
		resultLen := blockLen + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < outputLen; i++ {
			output[start+i] += real(oa.outputPadded[i])
		}
	}

	return nil
}

// OverlapAddConvolve performs one-shot overlap-add convolution.
// This is a convenience function that creates a temporary OverlapAdd instance.
func OverlapAddConvolve(signal, kernel []float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		return nil, err
	}
	return oa.Process(signal)
}
