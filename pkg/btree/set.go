// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

package btree

import (
	"github.com/tidwall/btree"
)

// Set is an ordered set. The zero value is not usable; use NewSet.
type Set[T any] struct {
	tree *btree.BTreeG[T]
}

// NewSet returns an empty ordered set using the given comparison.
func NewSet[T any](less func(a, b T) bool) *Set[T] {
	return &Set[T]{tree: btree.NewBTreeG(less)}
}

// Insert adds an item to the set.
func (s *Set[T]) Insert(item T) {
	s.tree.Set(item)
}

// Contains reports whether the item is in the set.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.tree.Get(item)
	return ok
}

// Len returns the number of items.
func (s *Set[T]) Len() int {
	return s.tree.Len()
}

// Copy returns a copy of the set. The copy is cheap: nodes are shared
// until written to.
func (s *Set[T]) Copy() *Set[T] {
	return &Set[T]{tree: s.tree.Copy()}
}

// Scan iterates items in ascending order until iter returns false.
func (s *Set[T]) Scan(iter func(item T) bool) {
	s.tree.Scan(iter)
}

// Items returns all items in ascending order.
func (s *Set[T]) Items() []T {
	return s.tree.Items()
}
