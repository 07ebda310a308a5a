// SPDX-License-Identifier: MIT

// Package nodes provides ready-made payload types for context graphs.
//
//	Root          – marker for a graph's origin (Identifiable only)
//	Dataoid[T]    – an observed datum           (Datable)
//	Spaceoid      – a point in space            (Spatial)
//	Tempoid       – a point in time             (Temporal)
//	SpaceTempoid  – a point in spacetime        (SpaceTemporal)
//
// All types are small immutable values, comparable with ==, and carry their
// own identity so adapters can correlate them with external records.
package nodes
