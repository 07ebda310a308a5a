// SPDX-License-Identifier: MIT

package contextgraph

import (
	"fmt"

	"github.com/katalvlaran/causalctx/protocols"
)

// Kind names the active case of a VertexType.
type Kind uint8

// Kinds of VertexType, one per payload case: the root marker (no payload),
// a datum D, a spatial point S, a temporal point T, or a spatio-temporal
// point ST.
const (
	KindRoot Kind = iota
	KindDatum
	KindSpatial
	KindTemporal
	KindSpaceTemporal
)

// String returns the kind name, or "Kind(<n>)" for an unknown value.
func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindDatum:
		return "Datum"
	case KindSpatial:
		return "Spatial"
	case KindTemporal:
		return "Temporal"
	case KindSpaceTemporal:
		return "SpaceTemporal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// VertexType is the payload of a Contextoid: exactly one of a root marker,
// a datum D, a spatial point S, a temporal point T, or a spatio-temporal
// point ST. Only the field selected by kind is meaningful; the others stay
// zero so that == compares the active case and its value.
//
// The zero VertexType is the root marker.
type VertexType[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal] struct {
	kind          Kind
	datum         D
	spatial       S
	temporal      T
	spaceTemporal ST
}

// RootVertex returns the root marker.
func RootVertex[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal]() VertexType[D, S, T, ST] {
	return VertexType[D, S, T, ST]{kind: KindRoot}
}

// DatumVertex returns a datum payload.
func DatumVertex[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal](d D) VertexType[D, S, T, ST] {
	return VertexType[D, S, T, ST]{kind: KindDatum, datum: d}
}

// SpatialVertex returns a spatial payload.
func SpatialVertex[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal](s S) VertexType[D, S, T, ST] {
	return VertexType[D, S, T, ST]{kind: KindSpatial, spatial: s}
}

// TemporalVertex returns a temporal payload.
func TemporalVertex[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal](t T) VertexType[D, S, T, ST] {
	return VertexType[D, S, T, ST]{kind: KindTemporal, temporal: t}
}

// SpaceTemporalVertex returns a spatio-temporal payload.
func SpaceTemporalVertex[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal](st ST) VertexType[D, S, T, ST] {
	return VertexType[D, S, T, ST]{kind: KindSpaceTemporal, spaceTemporal: st}
}

// Kind returns the active case.
func (v VertexType[D, S, T, ST]) Kind() Kind { return v.kind }

// IsRoot reports whether v is the root marker.
func (v VertexType[D, S, T, ST]) IsRoot() bool { return v.kind == KindRoot }

// Datum returns the datum and true if v is KindDatum.
func (v VertexType[D, S, T, ST]) Datum() (D, bool) {
	return v.datum, v.kind == KindDatum
}

// Spatial returns the spatial point and true if v is KindSpatial.
func (v VertexType[D, S, T, ST]) Spatial() (S, bool) {
	return v.spatial, v.kind == KindSpatial
}

// Temporal returns the temporal point and true if v is KindTemporal.
func (v VertexType[D, S, T, ST]) Temporal() (T, bool) {
	return v.temporal, v.kind == KindTemporal
}

// SpaceTemporal returns the spatio-temporal point and true if v is KindSpaceTemporal.
func (v VertexType[D, S, T, ST]) SpaceTemporal() (ST, bool) {
	return v.spaceTemporal, v.kind == KindSpaceTemporal
}

// String renders "Root", or "<Kind>: <payload>" for the other cases.
func (v VertexType[D, S, T, ST]) String() string {
	switch v.kind {
	case KindDatum:
		return fmt.Sprintf("Datum: %v", v.datum)
	case KindSpatial:
		return fmt.Sprintf("Spatial: %v", v.spatial)
	case KindTemporal:
		return fmt.Sprintf("Temporal: %v", v.temporal)
	case KindSpaceTemporal:
		return fmt.Sprintf("SpaceTemporal: %v", v.spaceTemporal)
	default:
		return v.kind.String()
	}
}
