package cmatrix

import "errors"

var (
	// ErrDimensionMismatch is returned by Solve when the right-hand side
	// length does not equal the matrix order. The kernel is never called in
	// that case.
	ErrDimensionMismatch = errors.New("cmatrix: right-hand side length does not match matrix order")

	// ErrOddVectorLength is returned by UnpackVector when the real vector
	// cannot be split into (real, imaginary) halves. It indicates an
	// internally inconsistent augmentation, not bad caller input.
	ErrOddVectorLength = errors.New("cmatrix: augmented vector length is not even")
)
