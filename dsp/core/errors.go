package core

import "errors"

// Errors shared by the sequence packages. Callers match them with errors.Is;
// packages wrap them with call-site context.
var (
	// ErrInvalidInput reports an empty sequence or a non-positive length.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexOutOfRange reports an onset outside the valid sample range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLengthMismatch reports sequences that must share a length but do not.
	ErrLengthMismatch = errors.New("length mismatch")
)
