// SPDX-License-Identifier: MIT

package nodes

import (
	"fmt"

	"github.com/katalvlaran/causalctx/protocols"
)

var _ protocols.Identifiable = SpaceTempoid{}

// SpaceTempoid is a point in spacetime: a spatial position observed at a time.
type SpaceTempoid struct {
	id       uint64
	x, y, z  float64
	timeUnit float64
}

// NewSpaceTempoid returns the spacetime point (x,y,z,t).
func NewSpaceTempoid(id uint64, x, y, z, t float64) SpaceTempoid {
	return SpaceTempoid{id: id, x: x, y: y, z: z, timeUnit: t}
}

// ID returns the identity.
func (s SpaceTempoid) ID() uint64 { return s.id }

// X returns the x coordinate.
func (s SpaceTempoid) X() float64 { return s.x }

// Y returns the y coordinate.
func (s SpaceTempoid) Y() float64 { return s.y }

// Z returns the z coordinate.
func (s SpaceTempoid) Z() float64 { return s.z }

// TimeUnit returns the position on the time axis.
func (s SpaceTempoid) TimeUnit() float64 { return s.timeUnit }

// String renders "SpaceTempoid: id: <id> x: <x> y: <y> z: <z> time_unit: <t>".
func (s SpaceTempoid) String() string {
	return fmt.Sprintf("SpaceTempoid: id: %d x: %g y: %g z: %g time_unit: %g", s.id, s.x, s.y, s.z, s.timeUnit)
}
