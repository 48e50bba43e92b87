// Package solver is the narrow binding to the sparse LU kernel
// (github.com/edp1096/sparse). It defines the buffer layout contract for
// crossing that boundary and nothing else: triplet index arrays are 0-based,
// complex buffers interleave real and imaginary components per element, and
// the right-hand-side buffer is the only one mutated — it is overwritten in
// place with the solution. The kernel does not retain the buffers beyond the
// call.
//
// The kernel computes in double precision; the 32-bit entry points widen at
// the boundary and narrow the solution on return.
package solver

import (
	"errors"
	"fmt"

	"github.com/edp1096/sparse"
)

var (
	// ErrTripletLength is returned when the row, column and value arrays do
	// not describe the same number of triplets.
	ErrTripletLength = errors.New("solver: triplet array lengths do not match")

	// ErrIndexRange is returned when a triplet index falls outside the order
	// implied by the right-hand-side buffer. Checked before the kernel is
	// touched.
	ErrIndexRange = errors.New("solver: triplet index outside matrix order")
)

// kernelConfig builds the sparse.Create configuration for one solve.
// Translate is off: indices are translated here, once, from the contract's
// 0-based form to the kernel's 1-based form.
func kernelConfig(complexArith bool) *sparse.Configuration {
	return &sparse.Configuration{
		Real:                    true,
		Complex:                 complexArith,
		SeparatedComplexVectors: false,
		Expandable:              true,
		Translate:               false,
		ModifiedNodal:           false,
		TiesMultiplier:          5,
		PrinterWidth:            80,
		Annotate:                0,
	}
}

func sparseCreate(order int64, complexArith bool) (*sparse.Matrix, error) {
	mat, err := sparse.Create(order, kernelConfig(complexArith))
	if err != nil {
		return nil, fmt.Errorf("solver: create: %w", err)
	}
	return mat, nil
}

func checkIndices(rows, cols []int64, order int64) error {
	if len(rows) != len(cols) {
		return fmt.Errorf("%w: %d rows, %d cols", ErrTripletLength, len(rows), len(cols))
	}
	for k := range rows {
		if rows[k] >= order || cols[k] >= order {
			return fmt.Errorf("%w: (%d,%d) with order %d", ErrIndexRange, rows[k], cols[k], order)
		}
	}
	return nil
}

func widen(src []float32) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out
}

func narrow(dst []float32, src []float64) {
	for i := range dst {
		dst[i] = float32(src[i])
	}
}
