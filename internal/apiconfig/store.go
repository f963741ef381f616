// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiconfig

import "sync/atomic"

// Store publishes the current [Resolver]. Readers never observe a partially
// built resolver: reloads construct a complete one and swap it in.
type Store struct {
	current atomic.Pointer[Resolver]
}

// NewStore returns a Store serving r.
func NewStore(r *Resolver) *Store {
	s := &Store{}
	s.current.Store(r)
	return s
}

// Load returns the resolver currently in effect.
func (s *Store) Load() *Resolver {
	return s.current.Load()
}

// Swap publishes r and returns the previous resolver.
func (s *Store) Swap(r *Resolver) *Resolver {
	return s.current.Swap(r)
}
