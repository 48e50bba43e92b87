package solver

import (
	"fmt"
)

// Complex64 solves the complex sparse system described by the triplet arrays
// against b, overwriting b with the solution. values and b interleave real
// and imaginary components per element: values holds two slots per triplet
// (len(values) == 2*len(rows)) and b holds two slots per unknown
// (len(b) == 2*order). This matches the kernel's in-memory complex layout.
func Complex64(rows, cols []int64, values []float64, b []float64) error {
	if len(values) != 2*len(rows) {
		return fmt.Errorf("%w: %d rows, %d value components", ErrTripletLength, len(rows), len(values))
	}
	if len(b)%2 != 0 {
		return fmt.Errorf("%w: rhs has %d components", ErrTripletLength, len(b))
	}
	order := int64(len(b) / 2)
	if err := checkIndices(rows, cols, order); err != nil {
		return err
	}
	if order == 0 {
		return nil
	}

	mat, err := sparseCreate(order, true)
	if err != nil {
		return err
	}
	defer mat.Destroy()

	for k := range rows {
		element := mat.GetElement(rows[k]+1, cols[k]+1)
		element.Real += values[2*k]
		element.Imag += values[2*k+1]
	}

	// Kernel complex vectors are 1-based and interleaved: slots 2i, 2i+1
	// hold unknown i for i in 1..order.
	rhs := make([]float64, 2*(order+1))
	for i := int64(0); i < order; i++ {
		rhs[2*(i+1)] = b[2*i]
		rhs[2*(i+1)+1] = b[2*i+1]
	}

	if err := mat.Factor(); err != nil {
		return fmt.Errorf("solver: factor: %w", err)
	}
	solution, _, err := mat.SolveComplex(rhs, nil)
	if err != nil {
		return fmt.Errorf("solver: solve: %w", err)
	}

	for i := int64(0); i < order; i++ {
		b[2*i] = solution[2*(i+1)]
		b[2*i+1] = solution[2*(i+1)+1]
	}
	return nil
}

// Complex32 is the single-precision entry point for the direct-complex
// shape, widening to the double-precision kernel and narrowing the solution
// back into b.
func Complex32(rows, cols []int64, values []float32, b []float32) error {
	b64 := widen(b)
	if err := Complex64(rows, cols, widen(values), b64); err != nil {
		return err
	}
	narrow(b, b64)
	return nil
}
