// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"iter"
	"runtime"

	"github.com/gaissmai/bintrie/internal/value"
)

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Hasher is implemented by keys and values that provide their own hash,
// all other keys and values are hashed with xxhash.
type Hasher = value.Hasher

// Getter is the minimal read surface of a foreign map for [Trie.Equal].
type Getter[K comparable, V any] interface {
	Get(key K) (V, bool)
	Size() int
}

// Hash returns an order independent hash over all entries, the wrapping sum
// of hash(key) ^ hash(value). Maps with equal entries have equal hashes,
// regardless of their implementation, see [HashOf].
func (t *Trie[K, V]) Hash() uint64 {
	return HashOf(t.All())
}

// HashOf returns the order independent hash of all pairs in seq, the same
// hash as [Trie.Hash] for equal entries, e.g. HashOf(maps.All(m)).
func HashOf[K comparable, V any](seq iter.Seq2[K, V]) (h uint64) {
	for key, val := range seq {
		h += value.Hash(key) ^ value.Hash(val)
	}
	return h
}

// Equal reports whether t and other hold the same key/value pairs.
//
// Another *Trie is compared node by node in pre-order, checking the values
// and the existence of children only, all other maps are compared key by
// key. A type assertion panic raised by a foreign map means not equal.
func (t *Trie[K, V]) Equal(other Getter[K, V]) bool {
	if other == nil {
		return false
	}

	if o, ok := other.(*Trie[K, V]); ok {
		if o == t {
			return true
		}
		if o == nil || o.size != t.size {
			return false
		}
		if t.size == 0 {
			return true
		}
		return compareAllNodes(t.root, o.root)
	}

	return equalByKeys(t.size, t.All(), other)
}

// EqualMap reports whether t holds exactly the pairs of m.
func (t *Trie[K, V]) EqualMap(m map[K]V) bool {
	return t.Equal(goMap[K, V](m))
}

// goMap adapts a Go map to Getter.
type goMap[K comparable, V any] map[K]V

func (m goMap[K, V]) Get(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m goMap[K, V]) Size() int {
	return len(m)
}

// equalByKeys compares the pairs in seq with other, key by key.
func equalByKeys[K comparable, V any](size int, seq iter.Seq2[K, V], other Getter[K, V]) (equal bool) {
	if other == nil || other.Size() != size {
		return false
	}

	// a foreign map may choke on our key type
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*runtime.TypeAssertionError); !ok {
				panic(r)
			}
			equal = false
		}
	}()

	for key, val := range seq {
		oVal, ok := other.Get(key)
		if !ok || !value.Equal(val, oVal) {
			return false
		}
	}
	return true
}

// compareNode compares one node with another at the same position in
// their tries, values and the existence of children, not the children.
func compareNode[K comparable, V any](a, b *node[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}

	if (a.left == nil) != (b.left == nil) {
		return false
	}
	if (a.right == nil) != (b.right == nil) {
		return false
	}

	if a.hasValue != b.hasValue {
		return false
	}
	return !a.hasValue || value.Equal(a.value, b.value)
}

// compareAllNodes walks both tries in pre-order, in lockstep, starting at
// the nodes a and b at the same position in their tries.
// Since compareNode checks the existence of the children, the walk
// over b is also a valid walk over a.
func compareAllNodes[K comparable, V any](a, b *node[K, V]) bool {
	if !compareNode(a, b) {
		return false
	}

outer:
	for b != nil {
		if b.left != nil {
			a, b = a.left, b.left
			if !compareNode(a, b) {
				return false
			}
			continue
		}

		if b.right != nil {
			a, b = a.right, b.right
			if !compareNode(a, b) {
				return false
			}
			continue
		}

		// we are a leaf node
		for b.parent != nil {
			if b == b.parent.left && b.parent.right != nil {
				a, b = a.parent.right, b.parent.right
				if !compareNode(a, b) {
					return false
				}
				continue outer
			}
			a, b = a.parent, b.parent
		}
		break
	}

	return true
}
