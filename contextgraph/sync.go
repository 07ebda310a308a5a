// SPDX-License-Identifier: MIT

package contextgraph

import (
	"sync"

	"github.com/katalvlaran/causalctx/protocols"
)

// SyncContext guards a Context with a sync.RWMutex so several goroutines can
// share it. Queries take the read lock; mutations take the write lock.
//
// Use View and Update to run several operations under one lock acquisition.
type SyncContext[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal] struct {
	mu  sync.RWMutex
	ctx *Context[D, S, T, ST]
}

// NewSync wraps c. c must not be used directly afterwards.
func NewSync[D protocols.Datable, S protocols.Spatial, T protocols.Temporal, ST protocols.SpaceTemporal](c *Context[D, S, T, ST]) *SyncContext[D, S, T, ST] {
	return &SyncContext[D, S, T, ST]{ctx: c}
}

// View runs fn with the read lock held. fn must not mutate c.
func (s *SyncContext[D, S, T, ST]) View(fn func(c *Context[D, S, T, ST]) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.ctx)
}

// Update runs fn with the write lock held.
func (s *SyncContext[D, S, T, ST]) Update(fn func(c *Context[D, S, T, ST]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.ctx)
}

// AddContextoid stores v under the write lock; see Context.AddContextoid.
func (s *SyncContext[D, S, T, ST]) AddContextoid(v Contextoid[D, S, T, ST]) NodeIndex {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctx.AddContextoid(v)
}

// RemoveContextoid removes h under the write lock; see Context.RemoveContextoid.
func (s *SyncContext[D, S, T, ST]) RemoveContextoid(h NodeIndex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx.RemoveContextoid(h)
}

// GetContextoid looks h up under the read lock.
func (s *SyncContext[D, S, T, ST]) GetContextoid(h NodeIndex) (Contextoid[D, S, T, ST], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ctx.GetContextoid(h)
}

// ContainsContextoid reports under the read lock whether h is live.
func (s *SyncContext[D, S, T, ST]) ContainsContextoid(h NodeIndex) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ctx.ContainsContextoid(h)
}

// AddEdge connects a → b under the write lock; see Context.AddEdge.
func (s *SyncContext[D, S, T, ST]) AddEdge(a, b NodeIndex, w uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctx.AddEdge(a, b, w)
}

// UpdateEdge upserts a → b under the write lock; see Context.UpdateEdge.
func (s *SyncContext[D, S, T, ST]) UpdateEdge(a, b NodeIndex, w uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctx.UpdateEdge(a, b, w)
}

// RemoveEdge deletes a → b under the write lock; see Context.RemoveEdge.
func (s *SyncContext[D, S, T, ST]) RemoveEdge(a, b NodeIndex) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctx.RemoveEdge(a, b)
}

// ContainsEdge reports under the read lock whether a → b exists.
func (s *SyncContext[D, S, T, ST]) ContainsEdge(a, b NodeIndex) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ctx.ContainsEdge(a, b)
}

// Size returns the number of Contextoids under the read lock.
func (s *SyncContext[D, S, T, ST]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ctx.Size()
}

// EdgeCount returns the number of edges under the read lock.
func (s *SyncContext[D, S, T, ST]) EdgeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ctx.EdgeCount()
}

// String renders the wrapped Context under the read lock.
func (s *SyncContext[D, S, T, ST]) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ctx.String()
}
