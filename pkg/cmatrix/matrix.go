// Package cmatrix provides a sparse complex matrix on top of the real/complex
// LU kernel from github.com/edp1096/sparse.
//
// Entries are stored as (row, col, value) triplets. The matrix order is
// inferred from the largest index present, a zero value is never stored, and
// writing to an occupied coordinate replaces the previous value. Solving
// delegates factorization to the kernel, either directly in complex
// arithmetic or through the equivalent real system of twice the order.
package cmatrix

import (
	"fmt"
	"strings"
)

// Float is the set of element widths the kernel binding can dispatch on.
// Exact types only: the binding selects its entry point by concrete slice
// type, so named float types are excluded on purpose.
type Float interface {
	float32 | float64
}

// Complex is one complex number, split into its real and imaginary parts.
type Complex[T Float] struct {
	Real T
	Imag T
}

// IsZero reports whether both components are the additive identity.
func (z Complex[T]) IsZero() bool {
	return z.Real == 0 && z.Imag == 0
}

// String renders the value as "a + jb" or "a - jb" depending on the sign of
// the imaginary part.
func (z Complex[T]) String() string {
	if z.Imag < 0 {
		return fmt.Sprintf("%g - j%g", z.Real, -z.Imag)
	}
	return fmt.Sprintf("%g + j%g", z.Real, z.Imag)
}

// Entry is a single (row, col, value) triplet. Coordinates are unsigned, so
// negative indices cannot be expressed.
type Entry[T Float] struct {
	Row   uint
	Col   uint
	Value Complex[T]
}

// Matrix is a square sparse complex matrix. The zero value is unusable; use
// New, FromEntries or Default. A Matrix is not safe for concurrent mutation.
type Matrix[T Float] struct {
	entries []Entry[T]
	mode    KernelMode
}

// New returns an empty matrix. The kernel mode defaults to KernelComplex.
func New[T Float]() *Matrix[T] {
	return &Matrix[T]{}
}

// FromEntries returns a matrix populated by applying AddElement to each entry
// in order. Later entries win over earlier ones at the same coordinate.
func FromEntries[T Float](entries []Entry[T]) *Matrix[T] {
	m := New[T]()
	m.AddElements(entries)
	return m
}

// Default returns the 2x2 identity matrix.
func Default[T Float]() *Matrix[T] {
	return FromEntries([]Entry[T]{
		{Row: 0, Col: 0, Value: Complex[T]{Real: 1}},
		{Row: 1, Col: 1, Value: Complex[T]{Real: 1}},
	})
}

// AddElement sets the value at (row, col). A zero value is a no-op; an
// explicit zero is never stored. Otherwise any previous entry at the same
// coordinate is replaced, it does not accumulate. Callers that mean to sum
// contributions must sum before calling.
func (m *Matrix[T]) AddElement(row, col uint, value Complex[T]) {
	if value.IsZero() {
		return
	}
	for i, e := range m.entries {
		if e.Row == row && e.Col == col {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	m.entries = append(m.entries, Entry[T]{Row: row, Col: col, Value: value})
}

// AddElements applies AddElement to each entry in input order.
func (m *Matrix[T]) AddElements(entries []Entry[T]) {
	for _, e := range entries {
		m.AddElement(e.Row, e.Col, e.Value)
	}
}

// Get returns the value stored at (row, col), or false if the coordinate
// holds no entry.
func (m *Matrix[T]) Get(row, col uint) (Complex[T], bool) {
	for _, e := range m.entries {
		if e.Row == row && e.Col == col {
			return e.Value, true
		}
	}
	return Complex[T]{}, false
}

// Order returns 1 + max(row, col) over all stored entries, or 0 for an empty
// matrix. It is derived from the current triplets on every call, so it can
// never go stale across mutation.
func (m *Matrix[T]) Order() int {
	order := 0
	for _, e := range m.entries {
		if int(e.Row)+1 > order {
			order = int(e.Row) + 1
		}
		if int(e.Col)+1 > order {
			order = int(e.Col) + 1
		}
	}
	return order
}

// Len returns the number of stored entries.
func (m *Matrix[T]) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the stored triplets in insertion order. The
// matrix keeps exclusive ownership of its own storage.
func (m *Matrix[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(m.entries))
	copy(out, m.entries)
	return out
}

// Clone returns an independent copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := FromEntries(m.entries)
	c.mode = m.mode
	return c
}

// Equal reports whether both matrices store the same triplet set, regardless
// of insertion order.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if other == nil || len(m.entries) != len(other.entries) {
		return false
	}
	for _, e := range m.entries {
		v, ok := other.Get(e.Row, e.Col)
		if !ok || v != e.Value {
			return false
		}
	}
	return true
}

// String renders the stored entries one per line as "(row,col) -> a + jb".
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Matrix {\n")
	for _, e := range m.entries {
		fmt.Fprintf(&sb, "  (%d,%d) -> %s\n", e.Row, e.Col, e.Value)
	}
	sb.WriteString("}")
	return sb.String()
}
