// SPDX-License-Identifier: MIT

// Package protocols declares the capability constraints a domain payload must
// satisfy before it can ride on a context-graph vertex.
//
// The four payload capabilities are orthogonal on purpose:
//
//	Datable        – opaque observed data (any comparable value)
//	Spatial        – a point in a spatial coordinate system (X, Y, Z)
//	Temporal       – a point on a time axis (TimeUnit)
//	SpaceTemporal  – Spatial and Temporal at once, for joint spacetime distances
//
// Identifiable is the only behavioural interface; it exposes a stable 64-bit
// identity and may be used as an ordinary interface type.
//
// Every payload capability embeds comparable so that a vertex holding the
// payload stays comparable with ==. Because of that, Datable, Spatial,
// Temporal and SpaceTemporal are constraint-only interfaces: use them as type
// parameters, not as variable types.
//
// The package carries no state and no algorithms. Distance functions over
// these capabilities live in package distance.
package protocols
