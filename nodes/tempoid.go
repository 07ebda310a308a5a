// SPDX-License-Identifier: MIT

package nodes

import (
	"fmt"

	"github.com/katalvlaran/causalctx/protocols"
)

var _ protocols.Identifiable = Tempoid{}

// Tempoid is a point on a time axis.
type Tempoid struct {
	id       uint64
	timeUnit float64
}

// NewTempoid returns the time point t.
func NewTempoid(id uint64, t float64) Tempoid {
	return Tempoid{id: id, timeUnit: t}
}

// ID returns the identity.
func (t Tempoid) ID() uint64 { return t.id }

// TimeUnit returns the position on the time axis.
func (t Tempoid) TimeUnit() float64 { return t.timeUnit }

// String renders "Tempoid: id: <id> time_unit: <t>".
func (t Tempoid) String() string {
	return fmt.Sprintf("Tempoid: id: %d time_unit: %g", t.id, t.timeUnit)
}
