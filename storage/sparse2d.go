// SPDX-License-Identifier: MIT

package storage

// Sparse2D is an unbounded storage backed by a map. Only cells that were
// Set occupy memory; Get on an untouched cell yields the zero value of T.
//
// Width and Height report no fixed bound. Negative coordinates are still a
// contract violation and panic.
type Sparse2D[T any] struct {
	cells map[PointIndex]T
}

var _ Storage[int] = (*Sparse2D[int])(nil)

// NewSparse2D returns an empty sparse storage.
func NewSparse2D[T any]() *Sparse2D[T] {
	return &Sparse2D[T]{cells: make(map[PointIndex]T)}
}

// Get returns the value at p, or the zero value if p was never Set.
// Complexity: O(1) average.
func (s *Sparse2D[T]) Get(p PointIndex) T {
	if p.X < 0 || p.Y < 0 {
		panic(outOfRange("Get", p))
	}

	return s.cells[p]
}

// Set stores v at p.
// Complexity: O(1) amortized.
func (s *Sparse2D[T]) Set(p PointIndex, v T) {
	if p.X < 0 || p.Y < 0 {
		panic(outOfRange("Set", p))
	}
	s.cells[p] = v
}

// Width reports that a sparse storage has no fixed column bound.
func (s *Sparse2D[T]) Width() (int, bool) { return 0, false }

// Height reports that a sparse storage has no fixed row bound.
func (s *Sparse2D[T]) Height() (int, bool) { return 0, false }

// Len returns the number of cells that hold an explicitly set value.
func (s *Sparse2D[T]) Len() int { return len(s.cells) }
