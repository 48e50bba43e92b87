package cmatrix

import "fmt"

// AugmentEntries re-expresses the complex triplet set as the triplets of the
// equivalent real matrix of order 2*order, exploiting the block structure of
// complex multiplication. A coefficient a+jb at (r,c) contributes
//
//	a at (r,c) and (r+n,c+n)
//	-b at (r,c+n) and b at (r+n,c)
//
// so that (a+jb)(x+jy) = (ax-by) + j(bx+ay) holds blockwise. Zero components
// are skipped independently, keeping the augmented system sparse.
//
// The returned arrays are parallel, 0-based, one sub-entry per slot.
func AugmentEntries[T Float](entries []Entry[T], order int) (rows, cols []int64, values []T) {
	n := int64(order)
	rows = make([]int64, 0, 4*len(entries))
	cols = make([]int64, 0, 4*len(entries))
	values = make([]T, 0, 4*len(entries))

	put := func(row, col int64, v T) {
		rows = append(rows, row)
		cols = append(cols, col)
		values = append(values, v)
	}

	for _, e := range entries {
		row, col := int64(e.Row), int64(e.Col)
		if e.Value.Real != 0 {
			put(row, col, e.Value.Real)
			put(row+n, col+n, e.Value.Real)
		}
		if e.Value.Imag != 0 {
			put(row, col+n, -e.Value.Imag)
			put(row+n, col, e.Value.Imag)
		}
	}

	return rows, cols, values
}

// PackVector expands a complex vector of length n to the real vector of
// length 2n used by the augmented system: all real parts in original order,
// followed by all imaginary parts. It is the inverse of UnpackVector.
func PackVector[T Float](b []Complex[T]) []T {
	n := len(b)
	out := make([]T, 2*n)
	for i, v := range b {
		out[i] = v.Real
		out[i+n] = v.Imag
	}
	return out
}

// UnpackVector folds a real vector of length 2n back into n complex numbers,
// pairing element i with element i+n. An odd length means the augmentation
// is internally inconsistent and is reported as ErrOddVectorLength, never
// truncated.
func UnpackVector[T Float](x []T) ([]Complex[T], error) {
	if len(x)%2 != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrOddVectorLength, len(x))
	}
	n := len(x) / 2
	out := make([]Complex[T], n)
	for i := 0; i < n; i++ {
		out[i] = Complex[T]{Real: x[i], Imag: x[i+n]}
	}
	return out, nil
}
