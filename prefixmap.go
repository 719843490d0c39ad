// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"iter"

	"github.com/pkg/errors"
)

// Map is the ordered map surface, implemented by [Trie] and [PrefixMap].
type Map[K comparable, V any] interface {
	Put(key K, val V) (prev V, existed bool, err error)
	Get(key K) (V, bool)
	ContainsKey(key K) bool
	ContainsValue(val V) bool
	Remove(key K) (V, bool)
	Clear()
	Size() int
	IsEmpty() bool
	All() iter.Seq2[K, V]
	KeySet() *KeySet[K, V]
	Values() *Values[K, V]
	EntrySet() *EntrySet[K, V]
}

// PrefixQuerier is the prefix surface, implemented by [Trie] and [PrefixMap].
//
// PrefixOf selects the keys that are a prefix of (shorter than) key,
// PrefixedBy the keys that are prefixed by (longer than) key.
// With keyInclusive, key itself is part of the result.
type PrefixQuerier[K comparable, V any] interface {
	ShortestPrefixOfValue(key K, keyInclusive bool) (V, bool)
	LongestPrefixOfValue(key K, keyInclusive bool) (V, bool)
	PrefixOfValues(key K, keyInclusive bool) (*Values[K, V], error)
	PrefixedByValues(key K, keyInclusive bool) (*Values[K, V], error)
	PrefixOfMap(key K, keyInclusive bool) (*PrefixMap[K, V], error)
	PrefixedByMap(key K, keyInclusive bool) (*PrefixMap[K, V], error)
}

// Interface combines the map and prefix surfaces.
type Interface[K comparable, V any] interface {
	Map[K, V]
	PrefixQuerier[K, V]
}

var (
	_ Interface[string, int] = (*Trie[string, int])(nil)
	_ Interface[string, int] = (*PrefixMap[string, int])(nil)
)

// ShortestPrefixOfValue returns the value of the shortest key that is
// a prefix of key, key itself included if keyInclusive.
func (t *Trie[K, V]) ShortestPrefixOfValue(key K, keyInclusive bool) (val V, ok bool) {
	_, val, ok = t.ShortestPrefixOf(key, keyInclusive)
	return
}

// LongestPrefixOfValue returns the value of the longest key that is
// a prefix of key, key itself included if keyInclusive.
// This is the longest-prefix-match.
func (t *Trie[K, V]) LongestPrefixOfValue(key K, keyInclusive bool) (val V, ok bool) {
	_, val, ok = t.LongestPrefixOf(key, keyInclusive)
	return
}

// ShortestPrefixOf is like [Trie.ShortestPrefixOfValue] but also returns the matching key.
func (t *Trie[K, V]) ShortestPrefixOf(key K, keyInclusive bool) (k K, val V, ok bool) {
	return t.shortestIn(bounds[K]{}, key, keyInclusive)
}

// LongestPrefixOf is like [Trie.LongestPrefixOfValue] but also returns the matching key.
func (t *Trie[K, V]) LongestPrefixOf(key K, keyInclusive bool) (k K, val V, ok bool) {
	return t.longestIn(bounds[K]{}, key, keyInclusive)
}

// PrefixOfValues returns a live view of the values of all keys
// that are a prefix of key, in ascending (shortest first) order.
func (t *Trie[K, V]) PrefixOfValues(key K, keyInclusive bool) (*Values[K, V], error) {
	if _, err := t.validKey(key); err != nil {
		return nil, err
	}
	return &Values[K, V]{t: t, b: prefixOfBounds(key, keyInclusive)}, nil
}

// PrefixedByValues returns a live view of the values of all keys
// prefixed by key, in ascending order.
func (t *Trie[K, V]) PrefixedByValues(key K, keyInclusive bool) (*Values[K, V], error) {
	if _, err := t.validKey(key); err != nil {
		return nil, err
	}
	return &Values[K, V]{t: t, b: prefixedByBounds(key, keyInclusive)}, nil
}

// PrefixOfMap returns a live sub-map of all keys that are a prefix of key.
func (t *Trie[K, V]) PrefixOfMap(key K, keyInclusive bool) (*PrefixMap[K, V], error) {
	if _, err := t.validKey(key); err != nil {
		return nil, err
	}
	return &PrefixMap[K, V]{t: t, b: prefixOfBounds(key, keyInclusive)}, nil
}

// PrefixedByMap returns a live sub-map of all keys prefixed by key.
func (t *Trie[K, V]) PrefixedByMap(key K, keyInclusive bool) (*PrefixMap[K, V], error) {
	if _, err := t.validKey(key); err != nil {
		return nil, err
	}
	return &PrefixMap[K, V]{t: t, b: prefixedByBounds(key, keyInclusive)}, nil
}

// shortestIn returns the first prefix of key within b.
func (t *Trie[K, V]) shortestIn(b bounds[K], key K, keyInclusive bool) (k K, val V, ok bool) {
	if _, err := t.validKey(key); err != nil {
		return
	}
	if n := t.newCursor(b.withPrefixOf(key, keyInclusive)).first(); n != nil {
		return t.resolveKey(n), n.value, true
	}
	return
}

// longestIn returns the last prefix of key within b.
func (t *Trie[K, V]) longestIn(b bounds[K], key K, keyInclusive bool) (k K, val V, ok bool) {
	if _, err := t.validKey(key); err != nil {
		return
	}

	var last *node[K, V]
	c := t.newCursor(b.withPrefixOf(key, keyInclusive))
	for n := c.first(); n != nil; n = c.next(n) {
		last = n
	}

	if last != nil {
		return t.resolveKey(last), last.value, true
	}
	return
}

// ####################################################################

// PrefixMap is a live sub-map of a trie, restricted to a prefix range.
// All changes are written through to the backing trie and vice versa.
//
// Keys outside the range are rejected by Put and are never found by
// Get, ContainsKey or Remove.
type PrefixMap[K comparable, V any] struct {
	t     *Trie[K, V]
	b     bounds[K]
	cache sizeCache

	keySet   *KeySet[K, V]
	values   *Values[K, V]
	entrySet *EntrySet[K, V]
}

// checkKey validates key and the range, with forceInclusive the
// bound keys themselves are accepted.
func (m *PrefixMap[K, V]) checkKey(key K, forceInclusive bool) error {
	if _, err := m.t.validKey(key); err != nil {
		return err
	}
	if !m.t.inRange(m.b, key, forceInclusive) {
		return errors.Wrapf(ErrInvalidArgument, "key out of range: %v", key)
	}
	return nil
}

// Put associates val with key in the backing trie.
// Keys out of range are rejected with ErrInvalidArgument.
func (m *PrefixMap[K, V]) Put(key K, val V) (prev V, existed bool, err error) {
	if err = m.checkKey(key, false); err != nil {
		return
	}
	return m.t.Put(key, val)
}

// Get returns the value for key if key is in range and stored.
func (m *PrefixMap[K, V]) Get(key K) (val V, ok bool) {
	if n := m.t.rangeGetNode(m.b, key); n != nil {
		return n.value, true
	}
	return
}

// ContainsKey reports whether key is in range and stored.
func (m *PrefixMap[K, V]) ContainsKey(key K) bool {
	return m.t.rangeGetNode(m.b, key) != nil
}

// ContainsValue reports whether any key in range maps to val.
func (m *PrefixMap[K, V]) ContainsValue(val V) bool {
	return m.Values().Contains(val)
}

// Remove deletes key from the backing trie if key is in range.
func (m *PrefixMap[K, V]) Remove(key K) (val V, ok bool) {
	n := m.t.rangeGetNode(m.b, key)
	if n == nil {
		return
	}
	val = n.value
	m.t.deleteNode(n)
	return val, true
}

// Clear removes all keys in range from the backing trie.
func (m *PrefixMap[K, V]) Clear() {
	m.t.rangeClear(m.b)
}

// Size returns the number of keys in range, recounted after modifications.
func (m *PrefixMap[K, V]) Size() int {
	return m.t.rangeSize(m.b, &m.cache)
}

// IsEmpty reports whether no key is in range.
func (m *PrefixMap[K, V]) IsEmpty() bool {
	return m.t.rangeIsEmpty(m.b)
}

// Iterator returns a fail-fast iterator over the entries in range.
func (m *PrefixMap[K, V]) Iterator() *Iterator[K, V, Entry[K, V]] {
	return newIterator(m.t, m.b, m.t.emitEntry)
}

// All returns an iterator over the key/value pairs in range, in ascending order.
func (m *PrefixMap[K, V]) All() iter.Seq2[K, V] {
	return seq2(func() *Iterator[K, V, *node[K, V]] {
		return newIterator(m.t, m.b, m.t.emitNode)
	})
}

// KeySet returns the live key view of the range.
func (m *PrefixMap[K, V]) KeySet() *KeySet[K, V] {
	if m.keySet == nil {
		m.keySet = &KeySet[K, V]{t: m.t, b: m.b}
	}
	return m.keySet
}

// Values returns the live value view of the range.
func (m *PrefixMap[K, V]) Values() *Values[K, V] {
	if m.values == nil {
		m.values = &Values[K, V]{t: m.t, b: m.b}
	}
	return m.values
}

// EntrySet returns the live entry view of the range.
func (m *PrefixMap[K, V]) EntrySet() *EntrySet[K, V] {
	if m.entrySet == nil {
		m.entrySet = &EntrySet[K, V]{t: m.t, b: m.b}
	}
	return m.entrySet
}

// ShortestPrefixOfValue returns the value of the shortest key in range
// that is a prefix of key.
func (m *PrefixMap[K, V]) ShortestPrefixOfValue(key K, keyInclusive bool) (val V, ok bool) {
	if m.checkKey(key, !keyInclusive) != nil {
		return
	}
	_, val, ok = m.t.shortestIn(m.b, key, keyInclusive)
	return
}

// LongestPrefixOfValue returns the value of the longest key in range
// that is a prefix of key.
func (m *PrefixMap[K, V]) LongestPrefixOfValue(key K, keyInclusive bool) (val V, ok bool) {
	if m.checkKey(key, !keyInclusive) != nil {
		return
	}
	_, val, ok = m.t.longestIn(m.b, key, keyInclusive)
	return
}

// PrefixOfValues returns a view of the values in range of all keys
// that are a prefix of key. The current low bound is kept.
//
// A key outside the range is rejected with ErrInvalidArgument, for an
// exclusive view the bound keys themselves are accepted.
func (m *PrefixMap[K, V]) PrefixOfValues(key K, keyInclusive bool) (*Values[K, V], error) {
	if err := m.checkKey(key, !keyInclusive); err != nil {
		return nil, err
	}
	return &Values[K, V]{t: m.t, b: m.b.withPrefixOf(key, keyInclusive)}, nil
}

// PrefixedByValues returns a view of the values in range of all keys
// prefixed by key. The current high bound is kept.
func (m *PrefixMap[K, V]) PrefixedByValues(key K, keyInclusive bool) (*Values[K, V], error) {
	if err := m.checkKey(key, !keyInclusive); err != nil {
		return nil, err
	}
	return &Values[K, V]{t: m.t, b: m.b.withPrefixedBy(key, keyInclusive)}, nil
}

// PrefixOfMap returns a nested sub-map, narrowed by the new high bound key.
func (m *PrefixMap[K, V]) PrefixOfMap(key K, keyInclusive bool) (*PrefixMap[K, V], error) {
	if err := m.checkKey(key, !keyInclusive); err != nil {
		return nil, err
	}
	return &PrefixMap[K, V]{t: m.t, b: m.b.withPrefixOf(key, keyInclusive)}, nil
}

// PrefixedByMap returns a nested sub-map, narrowed by the new low bound key.
func (m *PrefixMap[K, V]) PrefixedByMap(key K, keyInclusive bool) (*PrefixMap[K, V], error) {
	if err := m.checkKey(key, !keyInclusive); err != nil {
		return nil, err
	}
	return &PrefixMap[K, V]{t: m.t, b: m.b.withPrefixedBy(key, keyInclusive)}, nil
}

// Equal reports whether the range holds exactly the pairs of other.
func (m *PrefixMap[K, V]) Equal(other Getter[K, V]) bool {
	return equalByKeys(m.Size(), m.All(), other)
}

// Hash returns the order independent hash of the pairs in range,
// see [Trie.Hash].
func (m *PrefixMap[K, V]) Hash() uint64 {
	return HashOf(m.All())
}
