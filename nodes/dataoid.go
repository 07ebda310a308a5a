// SPDX-License-Identifier: MIT

package nodes

import (
	"fmt"

	"github.com/katalvlaran/causalctx/protocols"
)

var _ protocols.Identifiable = Dataoid[int]{}

// Dataoid wraps an observed datum with an identity.
// It is itself Datable whenever T is.
type Dataoid[T protocols.Datable] struct {
	id   uint64
	data T
}

// NewDataoid returns a Dataoid carrying data.
func NewDataoid[T protocols.Datable](id uint64, data T) Dataoid[T] {
	return Dataoid[T]{id: id, data: data}
}

// ID returns the identity.
func (d Dataoid[T]) ID() uint64 { return d.id }

// Data returns the wrapped datum.
func (d Dataoid[T]) Data() T { return d.data }

// String renders "Dataoid: id: <id> data: <data>".
func (d Dataoid[T]) String() string {
	return fmt.Sprintf("Dataoid: id: %d data: %v", d.id, d.data)
}
