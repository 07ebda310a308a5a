// SPDX-License-Identifier: MIT

package contextgraph

import (
	"fmt"

	"github.com/katalvlaran/causalctx/protocols"
)

// Contextoid is one vertex of a Context: an identity plus a VertexType.
// It is immutable and comparable with ==.
// Identities are not checked for uniqueness.
type Contextoid[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal] struct {
	id         uint64
	vertexType VertexType[D, S, T, ST]
}

// NewContextoid returns a Contextoid.
func NewContextoid[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal](id uint64, vt VertexType[D, S, T, ST]) Contextoid[D, S, T, ST] {
	return Contextoid[D, S, T, ST]{id: id, vertexType: vt}
}

// ID returns the caller-assigned identity.
func (c Contextoid[D, S, T, ST]) ID() uint64 { return c.id }

// VertexType returns the payload.
func (c Contextoid[D, S, T, ST]) VertexType() VertexType[D, S, T, ST] { return c.vertexType }

func (c Contextoid[D, S, T, ST]) String() string {
	return fmt.Sprintf("Contextoid ID: %d Type: %s", c.id, c.vertexType)
}
