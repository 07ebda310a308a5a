// SPDX-License-Identifier: MIT

// Package distance turns capability payloads into edge weights.
//
// Producers compute a float64 distance between two payloads of the same
// capability; ToWeight converts it into the non-negative uint64 cost stored
// on context-graph edges. The capability protocols themselves stay free of
// distance logic, so callers pick the metric per edge.
//
//	Euclidean    – straight-line distance between two Spatial points
//	TemporalGap  – absolute difference between two Temporal points
//	Minkowski    – spacetime interval between two SpaceTemporal points
package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/causalctx/protocols"
)

// Sentinel errors for weight conversion.
var (
	// ErrInvalidDistance indicates a NaN, infinite, or negative distance.
	ErrInvalidDistance = errors.New("distance: distance must be finite and non-negative")

	// ErrWeightOverflow indicates the scaled distance does not fit into uint64.
	ErrWeightOverflow = errors.New("distance: scaled distance overflows uint64")

	// ErrBadScale indicates a non-positive or non-finite scale factor.
	ErrBadScale = errors.New("distance: scale must be finite and > 0")
)

// DefaultScale keeps three decimal places of a distance when rounding it
// into an integer weight.
const DefaultScale = 1000

// Euclidean returns the straight-line distance between a and b.
// Complexity: O(1).
func Euclidean[S protocols.Spatial](a, b S) float64 {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	dz := a.Z() - b.Z()

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// TemporalGap returns |a − b| on the time axis.
// Complexity: O(1).
func TemporalGap[T protocols.Temporal](a, b T) float64 {
	return math.Abs(a.TimeUnit() - b.TimeUnit())
}

// Minkowski returns the magnitude of the spacetime interval between a and b,
//
//	sqrt(|c²Δt² − Δx² − Δy² − Δz²|)
//
// where c converts time units into spatial units. Light-like separated points
// have interval 0. c must be positive; c ≤ 0 panics as a programmer error.
// Complexity: O(1).
func Minkowski[ST protocols.SpaceTemporal](a, b ST, c float64) float64 {
	if c <= 0 || math.IsNaN(c) {
		panic(fmt.Sprintf("distance: Minkowski: c must be > 0, got %g", c))
	}
	dt := (a.TimeUnit() - b.TimeUnit()) * c
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	dz := a.Z() - b.Z()

	return math.Sqrt(math.Abs(dt*dt - dx*dx - dy*dy - dz*dz))
}

// ToWeight rounds d*scale to the nearest integer weight.
//
// Errors:
//   - ErrBadScale if scale is not a finite positive number.
//   - ErrInvalidDistance if d is NaN, ±Inf, or negative.
//   - ErrWeightOverflow if d*scale does not fit into uint64.
//
// Complexity: O(1).
func ToWeight(d, scale float64) (uint64, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 0, fmt.Errorf("%w: %g", ErrBadScale, scale)
	}
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0, fmt.Errorf("%w: %g", ErrInvalidDistance, d)
	}
	scaled := math.Round(d * scale)
	// float64(MaxUint64) rounds up to 2^64, so ≥ is the exact overflow test.
	if scaled >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: %g", ErrWeightOverflow, scaled)
	}

	return uint64(scaled), nil
}

// Weigher computes the edge weight between two payloads.
type Weigher[P any] func(a, b P) (uint64, error)

// SpatialWeigher returns a Weigher using Euclidean distance at the given scale.
func SpatialWeigher[S protocols.Spatial](scale float64) Weigher[S] {
	return func(a, b S) (uint64, error) {
		return ToWeight(Euclidean(a, b), scale)
	}
}

// TemporalWeigher returns a Weigher using TemporalGap at the given scale.
func TemporalWeigher[T protocols.Temporal](scale float64) Weigher[T] {
	return func(a, b T) (uint64, error) {
		return ToWeight(TemporalGap(a, b), scale)
	}
}

// SpaceTemporalWeigher returns a Weigher using the Minkowski interval with
// time conversion factor c, at the given scale.
func SpaceTemporalWeigher[ST protocols.SpaceTemporal](c, scale float64) Weigher[ST] {
	if c <= 0 || math.IsNaN(c) {
		panic(fmt.Sprintf("distance: SpaceTemporalWeigher: c must be > 0, got %g", c))
	}

	return func(a, b ST) (uint64, error) {
		return ToWeight(Minkowski(a, b, c), scale)
	}
}
