// Copyright 2023 Auraledger Authors
// SPDX-License-Identifier: LGPL-3.0-only

// Package btree wraps tidwall/btree with ordered map and set types keyed
// by an explicit comparison function, so iteration order is deterministic
// across nodes regardless of insertion order.
package btree

import (
	"github.com/tidwall/btree"
)

type mapItem[K, V any] struct {
	key   K
	value V
}

// Map is an ordered map. The zero value is not usable; use NewMap.
type Map[K, V any] struct {
	tree *btree.BTreeG[mapItem[K, V]]
}

// NewMap returns an empty ordered map using the given key comparison.
func NewMap[K, V any](less func(a, b K) bool) *Map[K, V] {
	return &Map[K, V]{
		tree: btree.NewBTreeG(func(a, b mapItem[K, V]) bool {
			return less(a.key, b.key)
		}),
	}
}

// Set sets or replaces the value for a key.
func (m *Map[K, V]) Set(key K, value V) {
	m.tree.Set(mapItem[K, V]{key: key, value: value})
}

// Get returns the value for a key, if present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	item, ok := m.tree.Get(mapItem[K, V]{key: key})
	return item.value, ok
}

// Delete removes the entry for a key, if present.
func (m *Map[K, V]) Delete(key K) {
	m.tree.Delete(mapItem[K, V]{key: key})
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Copy returns a copy of the map. The copy is cheap: nodes are shared
// until written to.
func (m *Map[K, V]) Copy() *Map[K, V] {
	return &Map[K, V]{tree: m.tree.Copy()}
}

// Scan iterates entries in ascending key order until iter returns false.
func (m *Map[K, V]) Scan(iter func(key K, value V) bool) {
	m.tree.Scan(func(item mapItem[K, V]) bool {
		return iter(item.key, item.value)
	})
}

// Keys returns all keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.tree.Scan(func(item mapItem[K, V]) bool {
		keys = append(keys, item.key)
		return true
	})
	return keys
}
