package solver

import (
	"fmt"
)

// Real64 solves the real sparse system described by the parallel triplet
// arrays against b, overwriting b with the solution. rows, cols and values
// must have one slot per triplet; len(b) is the matrix order. Duplicate
// coordinates accumulate, per the kernel's stamping semantics.
func Real64(rows, cols []int64, values []float64, b []float64) error {
	if len(values) != len(rows) {
		return fmt.Errorf("%w: %d rows, %d values", ErrTripletLength, len(rows), len(values))
	}
	order := int64(len(b))
	if err := checkIndices(rows, cols, order); err != nil {
		return err
	}
	if order == 0 {
		return nil
	}

	mat, err := sparseCreate(order, false)
	if err != nil {
		return err
	}
	defer mat.Destroy()

	for k := range rows {
		mat.GetElement(rows[k]+1, cols[k]+1).Real += values[k]
	}

	// Kernel vectors are 1-based; slot 0 is unused.
	rhs := make([]float64, order+1)
	copy(rhs[1:], b)

	if err := mat.Factor(); err != nil {
		return fmt.Errorf("solver: factor: %w", err)
	}
	solution, err := mat.Solve(rhs)
	if err != nil {
		return fmt.Errorf("solver: solve: %w", err)
	}

	copy(b, solution[1:order+1])
	return nil
}

// Real32 is the single-precision entry point for the real-augmented shape.
// The kernel is double precision, so buffers are widened for the call and
// the solution narrowed back into b.
func Real32(rows, cols []int64, values []float32, b []float32) error {
	b64 := widen(b)
	if err := Real64(rows, cols, widen(values), b64); err != nil {
		return err
	}
	narrow(b, b64)
	return nil
}
