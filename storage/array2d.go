// SPDX-License-Identifier: MIT

package storage

// Array2D is a fixed-size W×H storage kept row-major in a flat slice for
// cache friendliness. The zero value is not usable; build one with
// NewArray2D or FromRows.
type Array2D[T any] struct {
	w, h int // columns, rows
	data []T // len(data) == w*h, row-major
}

// compile-time check
var _ Storage[int] = (*Array2D[int])(nil)

// NewArray2D creates a width×height storage filled with the zero value of T.
// Returns ErrInvalidDimensions unless both dimensions are positive.
// Complexity: O(w*h) time and memory.
func NewArray2D[T any](width, height int) (*Array2D[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Array2D[T]{w: width, h: height, data: make([]T, width*height)}, nil
}

// FromRows builds an Array2D from a non-empty rectangular slice of rows.
// rows[y][x] becomes the value at PointIndex{X: x, Y: y}. The input is
// deep-copied so later mutation of rows does not leak into the storage.
// Complexity: O(w*h).
func FromRows[T any](rows [][]T) (*Array2D[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	var row []T
	for _, row = range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	a := &Array2D[T]{w: w, h: h, data: make([]T, w*h)}
	var y int
	for y = 0; y < h; y++ {
		copy(a.data[y*w:(y+1)*w], rows[y])
	}

	return a, nil
}

// InBounds reports whether p addresses a cell of the storage.
// Complexity: O(1).
func (a *Array2D[T]) InBounds(p PointIndex) bool {
	return p.X >= 0 && p.X < a.w && p.Y >= 0 && p.Y < a.h
}

// indexOf maps p to its flat offset, or reports false when out of range.
func (a *Array2D[T]) indexOf(p PointIndex) (int, bool) {
	if !a.InBounds(p) {
		return 0, false
	}

	return p.Y*a.w + p.X, true
}

// Get returns the value at p. Panics if p is out of range.
// Complexity: O(1).
func (a *Array2D[T]) Get(p PointIndex) T {
	idx, ok := a.indexOf(p)
	if !ok {
		panic(outOfRange("Get", p))
	}

	return a.data[idx]
}

// Set stores v at p. Panics if p is out of range.
// Complexity: O(1).
func (a *Array2D[T]) Set(p PointIndex, v T) {
	idx, ok := a.indexOf(p)
	if !ok {
		panic(outOfRange("Set", p))
	}
	a.data[idx] = v
}

// At is the fallible form of Get: it returns ErrOutOfRange instead of panicking.
// Complexity: O(1).
func (a *Array2D[T]) At(p PointIndex) (T, error) {
	idx, ok := a.indexOf(p)
	if !ok {
		var zero T
		return zero, outOfRange("At", p)
	}

	return a.data[idx], nil
}

// Put is the fallible form of Set: it returns ErrOutOfRange instead of panicking.
// Complexity: O(1).
func (a *Array2D[T]) Put(p PointIndex, v T) error {
	idx, ok := a.indexOf(p)
	if !ok {
		return outOfRange("Put", p)
	}
	a.data[idx] = v

	return nil
}

// Width returns the number of columns. The bound is always known.
func (a *Array2D[T]) Width() (int, bool) { return a.w, true }

// Height returns the number of rows. The bound is always known.
func (a *Array2D[T]) Height() (int, bool) { return a.h, true }

// Rows returns a deep copy of the storage as a slice of rows.
// Complexity: O(w*h).
func (a *Array2D[T]) Rows() [][]T {
	out := make([][]T, a.h)
	var y int
	for y = 0; y < a.h; y++ {
		out[y] = make([]T, a.w)
		copy(out[y], a.data[y*a.w:(y+1)*a.w])
	}

	return out
}
