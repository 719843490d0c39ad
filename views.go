// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"iter"

	"github.com/gaissmai/bintrie/internal/value"
)

// sizeCache memoizes the size of a restricted view for one revision.
type sizeCache struct {
	size     int
	revision uint64
	valid    bool
}

// rangeSize returns the number of keys in b, in O(1) for the whole trie,
// otherwise counted by iteration and cached until the next modification.
func (t *Trie[K, V]) rangeSize(b bounds[K], cache *sizeCache) int {
	if b.unrestricted() {
		return t.size
	}

	if cache.valid && cache.revision == t.revision {
		return cache.size
	}

	size := 0
	c := t.newCursor(b)
	for n := c.first(); n != nil; n = c.next(n) {
		size++
	}

	*cache = sizeCache{size: size, revision: t.revision, valid: true}
	return size
}

// rangeIsEmpty reports whether no key is in b.
func (t *Trie[K, V]) rangeIsEmpty(b bounds[K]) bool {
	if b.unrestricted() {
		return t.IsEmpty()
	}
	return t.newCursor(b).first() == nil
}

// rangeClear removes all keys in b.
func (t *Trie[K, V]) rangeClear(b bounds[K]) {
	if b.unrestricted() {
		t.Clear()
		return
	}

	it := newIterator(t, b, t.emitNode)
	for it.HasNext() {
		// can't fail, we are the only one modifying the trie
		if _, err := it.Next(); err != nil {
			panic(err)
		}
		if err := it.Remove(); err != nil {
			panic(err)
		}
	}
}

// rangeGetNode returns the valued node for key if key is in b.
func (t *Trie[K, V]) rangeGetNode(b bounds[K], key K) *node[K, V] {
	if _, err := t.validKey(key); err != nil {
		return nil
	}
	if !t.inRange(b, key, false) {
		return nil
	}
	return t.getNode(key)
}

// ####################################################################

// KeySet is a live view of the keys of a trie or of a prefix range.
type KeySet[K comparable, V any] struct {
	t     *Trie[K, V]
	b     bounds[K]
	cache sizeCache
}

// KeySet returns the live key view of t, the view is created once.
func (t *Trie[K, V]) KeySet() *KeySet[K, V] {
	if t.keySet == nil {
		t.keySet = &KeySet[K, V]{t: t}
	}
	return t.keySet
}

// Iterator returns a fail-fast iterator over the keys in ascending order.
func (s *KeySet[K, V]) Iterator() *Iterator[K, V, K] {
	return newIterator(s.t, s.b, s.t.emitKey)
}

// All returns an iterator over the keys in ascending order,
// may be used in a for/range loop.
func (s *KeySet[K, V]) All() iter.Seq[K] {
	return seq(s.Iterator)
}

// Size returns the number of keys in the view.
func (s *KeySet[K, V]) Size() int {
	return s.t.rangeSize(s.b, &s.cache)
}

// IsEmpty reports whether the view has no keys.
func (s *KeySet[K, V]) IsEmpty() bool {
	return s.t.rangeIsEmpty(s.b)
}

// Contains reports whether key is in the view.
func (s *KeySet[K, V]) Contains(key K) bool {
	return s.t.rangeGetNode(s.b, key) != nil
}

// Remove deletes key from the trie if key is in the view.
func (s *KeySet[K, V]) Remove(key K) bool {
	n := s.t.rangeGetNode(s.b, key)
	if n == nil {
		return false
	}
	s.t.deleteNode(n)
	return true
}

// Clear removes all keys of the view from the trie.
func (s *KeySet[K, V]) Clear() {
	s.t.rangeClear(s.b)
}

// ####################################################################

// Values is a live view of the values of a trie or of a prefix range.
type Values[K comparable, V any] struct {
	t     *Trie[K, V]
	b     bounds[K]
	cache sizeCache
}

// Values returns the live value view of t, the view is created once.
func (t *Trie[K, V]) Values() *Values[K, V] {
	if t.values == nil {
		t.values = &Values[K, V]{t: t}
	}
	return t.values
}

// Iterator returns a fail-fast iterator over the values in ascending key order.
func (s *Values[K, V]) Iterator() *Iterator[K, V, V] {
	return newIterator(s.t, s.b, s.t.emitValue)
}

// All returns an iterator over the values in ascending key order,
// may be used in a for/range loop.
func (s *Values[K, V]) All() iter.Seq[V] {
	return seq(s.Iterator)
}

// Size returns the number of values in the view.
func (s *Values[K, V]) Size() int {
	return s.t.rangeSize(s.b, &s.cache)
}

// IsEmpty reports whether the view has no values.
func (s *Values[K, V]) IsEmpty() bool {
	return s.t.rangeIsEmpty(s.b)
}

// Contains reports whether val is in the view.
func (s *Values[K, V]) Contains(val V) bool {
	if value.IsNil(val) {
		return false
	}
	c := s.t.newCursor(s.b)
	for n := c.first(); n != nil; n = c.next(n) {
		if value.Equal(val, n.value) {
			return true
		}
	}
	return false
}

// Remove deletes the first key in the view mapping to val.
func (s *Values[K, V]) Remove(val V) bool {
	it := newIterator(s.t, s.b, s.t.emitNode)
	for it.HasNext() {
		n, err := it.Next()
		if err != nil {
			panic(err)
		}
		if value.Equal(n.value, val) {
			if err := it.Remove(); err != nil {
				panic(err)
			}
			return true
		}
	}
	return false
}

// Clear removes all values of the view from the trie.
func (s *Values[K, V]) Clear() {
	s.t.rangeClear(s.b)
}

// ####################################################################

// EntrySet is a live view of the entries of a trie or of a prefix range.
type EntrySet[K comparable, V any] struct {
	t     *Trie[K, V]
	b     bounds[K]
	cache sizeCache
}

// EntrySet returns the live entry view of t, the view is created once.
func (t *Trie[K, V]) EntrySet() *EntrySet[K, V] {
	if t.entrySet == nil {
		t.entrySet = &EntrySet[K, V]{t: t}
	}
	return t.entrySet
}

// Iterator returns a fail-fast iterator over the entries in ascending order.
func (s *EntrySet[K, V]) Iterator() *Iterator[K, V, Entry[K, V]] {
	return newIterator(s.t, s.b, s.t.emitEntry)
}

// All returns an iterator over the entries in ascending order,
// may be used in a for/range loop.
func (s *EntrySet[K, V]) All() iter.Seq[Entry[K, V]] {
	return seq(s.Iterator)
}

// Size returns the number of entries in the view.
func (s *EntrySet[K, V]) Size() int {
	return s.t.rangeSize(s.b, &s.cache)
}

// IsEmpty reports whether the view has no entries.
func (s *EntrySet[K, V]) IsEmpty() bool {
	return s.t.rangeIsEmpty(s.b)
}

// Contains reports whether key is in the view and maps to val.
func (s *EntrySet[K, V]) Contains(key K, val V) bool {
	n := s.t.rangeGetNode(s.b, key)
	return n != nil && value.Equal(n.value, val)
}

// Remove deletes key from the trie if key is in the view and maps to val.
func (s *EntrySet[K, V]) Remove(key K, val V) bool {
	n := s.t.rangeGetNode(s.b, key)
	if n == nil || !value.Equal(n.value, val) {
		return false
	}
	s.t.deleteNode(n)
	return true
}

// Clear removes all entries of the view from the trie.
func (s *EntrySet[K, V]) Clear() {
	s.t.rangeClear(s.b)
}
