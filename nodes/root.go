// SPDX-License-Identifier: MIT

package nodes

import (
	"fmt"

	"github.com/katalvlaran/causalctx/protocols"
)

var _ protocols.Identifiable = Root{}

// Root marks the origin of a context graph.
type Root struct {
	id uint64
}

// NewRoot returns a Root with the given identity.
func NewRoot(id uint64) Root { return Root{id: id} }

// ID returns the identity.
func (r Root) ID() uint64 { return r.id }

// String renders "Root ID: <id>".
func (r Root) String() string { return fmt.Sprintf("Root ID: %d", r.id) }
