// Package conv provides discrete linear convolution of stimulus sequences
// with response kernels, plus element-wise summation of sequences.
//
// The package offers two convolution strategies:
//
//   - Direct convolution: O(N*K) time-domain convolution, vectorised over the
//     kernel. Used for short kernels such as scan-rate HRFs.
//   - Overlap-add (OLA): FFT-based block convolution, efficient when the kernel
//     is long, for example an HRF sampled at micro-time resolution.
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(train, kernel)  // Auto-selects best algorithm
//	result, err := conv.Direct(train, kernel)    // Force direct convolution
//
// Convolution is linear, so several stimulus trains can be combined either
// before or after convolving:
//
//	combined, err := conv.Sum(train1, train2)
//	result, err := conv.Convolve(combined, kernel)
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, 0)
//	result, err := c.Process(train)
//
// # Output length
//
// All convolution functions return the "full" result of length N+K-1 unless a
// different [Mode] is requested through [ConvolveMode]. The full result keeps
// the whole response tail that decays past the end of the input.
//
// # Errors
//
// Empty inputs fail with an error matching core.ErrInvalidInput, and
// sequences of unequal length fail with one matching core.ErrLengthMismatch.
package conv
