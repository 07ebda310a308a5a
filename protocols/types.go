// SPDX-License-Identifier: MIT

package protocols

// Identifiable exposes a stable 64-bit identity.
type Identifiable interface {
	// ID returns the identity. It must not change over the value's lifetime.
	ID() uint64
}

// Datable marks a type as a valid generic data payload.
// No operations are mandated; comparability keeps vertices comparable.
type Datable interface {
	comparable
}

// Spatial marks a type as a point in a spatial coordinate system.
//
// Planar payloads return 0 from Z. Units are the caller's; distance
// producers treat all three axes uniformly.
type Spatial interface {
	comparable

	// X returns the first coordinate.
	X() float64
	// Y returns the second coordinate.
	Y() float64
	// Z returns the third coordinate (0 for planar payloads).
	Z() float64
}

// Temporal marks a type as a point on a time axis usable for ordering and
// distance computation.
type Temporal interface {
	comparable

	// TimeUnit returns the position on the time axis in caller-defined units.
	TimeUnit() float64
}

// SpaceTemporal composes Spatial and Temporal into a single coordinate,
// used when a position is defined jointly in space and time.
type SpaceTemporal interface {
	Spatial
	Temporal
}
