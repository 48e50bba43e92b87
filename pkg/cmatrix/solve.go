package cmatrix

import (
	"fmt"

	"github.com/edp1096/sparse-complex/pkg/solver"
)

// KernelMode selects which call shape of the native kernel a Solve uses.
type KernelMode int

const (
	// KernelComplex hands the kernel the original complex triplets and an
	// interleaved complex right-hand side; the kernel factors in complex
	// arithmetic. This is the default.
	KernelComplex KernelMode = iota

	// KernelReal treats the kernel as real-only: the system is expanded to
	// the equivalent real system of twice the order before the call and the
	// real solution is folded back afterwards.
	KernelReal
)

// SetKernelMode selects the call shape used by subsequent Solve calls.
func (m *Matrix[T]) SetKernelMode(mode KernelMode) {
	m.mode = mode
}

// Solve solves A x = b for the complex vector x, where A is the matrix. The
// length of b must equal Order; otherwise ErrDimensionMismatch is returned
// and the kernel is not called. Each call performs a full
// construct-factor-solve pass; b itself is left untouched.
//
// Kernel failures (singular system) are propagated to the caller unchanged.
func (m *Matrix[T]) Solve(b []Complex[T]) ([]Complex[T], error) {
	n := m.Order()
	if len(b) != n {
		return nil, fmt.Errorf("%w: rhs length %d, order %d", ErrDimensionMismatch, len(b), n)
	}
	if n == 0 {
		return nil, nil
	}

	if m.mode == KernelReal {
		return m.solveAugmented(b, n)
	}
	return m.solveDirect(b)
}

// solveDirect marshals the complex triplets and right-hand side into the
// kernel's interleaved complex layout and calls the direct-complex entry
// point for the element width.
func (m *Matrix[T]) solveDirect(b []Complex[T]) ([]Complex[T], error) {
	rows := make([]int64, len(m.entries))
	cols := make([]int64, len(m.entries))
	values := make([]T, 2*len(m.entries))
	for i, e := range m.entries {
		rows[i] = int64(e.Row)
		cols[i] = int64(e.Col)
		values[2*i] = e.Value.Real
		values[2*i+1] = e.Value.Imag
	}

	rhs := make([]T, 2*len(b))
	for i, v := range b {
		rhs[2*i] = v.Real
		rhs[2*i+1] = v.Imag
	}

	var err error
	switch v := any(values).(type) {
	case []float64:
		err = solver.Complex64(rows, cols, v, any(rhs).([]float64))
	case []float32:
		err = solver.Complex32(rows, cols, v, any(rhs).([]float32))
	}
	if err != nil {
		return nil, err
	}

	x := make([]Complex[T], len(b))
	for i := range x {
		x[i] = Complex[T]{Real: rhs[2*i], Imag: rhs[2*i+1]}
	}
	return x, nil
}

// solveAugmented expands the system to its real 2n-order form, calls the
// real-only entry point for the element width, and folds the real solution
// back into complex pairs.
func (m *Matrix[T]) solveAugmented(b []Complex[T], n int) ([]Complex[T], error) {
	rows, cols, values := AugmentEntries(m.entries, n)
	rhs := PackVector(b)

	var err error
	switch v := any(values).(type) {
	case []float64:
		err = solver.Real64(rows, cols, v, any(rhs).([]float64))
	case []float32:
		err = solver.Real32(rows, cols, v, any(rhs).([]float32))
	}
	if err != nil {
		return nil, err
	}

	return UnpackVector(rhs)
}
