// SPDX-License-Identifier: MIT

// Package storage provides a generic two-dimensional indexed storage
// abstraction used to back grid-shaped spatial payloads.
//
// Addressing convention: PointIndex.Y selects the row (outer dimension) and
// PointIndex.X selects the column (inner dimension), i.e. cell (x,y) is row y,
// column x, exactly like gridgraph's CellValues[y][x].
//
// Get and Set treat out-of-range access as a programming error and panic.
// Array2D additionally offers At and Put, which return ErrOutOfRange instead.
//
// The storage is independent of any graph and knows nothing about node handles.
package storage

import (
	"errors"
	"fmt"
)

// Sentinel errors for storage operations.
var (
	// ErrOutOfRange indicates a point outside the storage bounds.
	ErrOutOfRange = errors.New("storage: point out of range")

	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("storage: dimensions must be > 0")

	// ErrEmptyGrid indicates input rows with no rows or no columns.
	ErrEmptyGrid = errors.New("storage: input grid must have at least one row and one column")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("storage: all rows must have the same length")
)

// PointIndex addresses one cell of a two-dimensional storage.
type PointIndex struct {
	X int // column
	Y int // row
}

// NewPointIndex returns the point (x,y).
func NewPointIndex(x, y int) PointIndex {
	return PointIndex{X: x, Y: y}
}

// String renders the point as "(x,y)".
func (p PointIndex) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Storage is a 2-D container addressed by PointIndex.
//
// For a backing store with fixed width W and height H every point with
// 0 ≤ X < W and 0 ≤ Y < H is valid; anything else is a contract violation.
type Storage[T any] interface {
	// Get returns the value stored at p.
	// Complexity: O(1).
	Get(p PointIndex) T

	// Set overwrites the value stored at p.
	// Complexity: O(1).
	Set(p PointIndex, v T)

	// Width returns the column bound and true, or (0, false) when the
	// backing store has no fixed bound.
	Width() (int, bool)

	// Height returns the row bound and true, or (0, false) when the
	// backing store has no fixed bound.
	Height() (int, bool)
}

// outOfRange builds the panic value used by Get/Set contract violations.
func outOfRange(method string, p PointIndex) error {
	return fmt.Errorf("storage: %s%s: %w", method, p, ErrOutOfRange)
}
