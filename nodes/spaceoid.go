// SPDX-License-Identifier: MIT

package nodes

import (
	"fmt"

	"github.com/katalvlaran/causalctx/protocols"
)

var _ protocols.Identifiable = Spaceoid{}

// Spaceoid is a point in three-dimensional space. Planar points use z = 0.
type Spaceoid struct {
	id      uint64
	x, y, z float64
}

// NewSpaceoid returns the point (x,y,z).
func NewSpaceoid(id uint64, x, y, z float64) Spaceoid {
	return Spaceoid{id: id, x: x, y: y, z: z}
}

// ID returns the identity.
func (s Spaceoid) ID() uint64 { return s.id }

// X returns the x coordinate.
func (s Spaceoid) X() float64 { return s.x }

// Y returns the y coordinate.
func (s Spaceoid) Y() float64 { return s.y }

// Z returns the z coordinate.
func (s Spaceoid) Z() float64 { return s.z }

// String renders "Spaceoid: id: <id> x: <x> y: <y> z: <z>".
func (s Spaceoid) String() string {
	return fmt.Sprintf("Spaceoid: id: %d x: %g y: %g z: %g", s.id, s.x, s.y, s.z)
}
