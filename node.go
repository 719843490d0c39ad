// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// node is a binary trie node, one level per key bit, no path compression.
//
// A node without children must have a value, empty leaves are pruned.
// Intermediate nodes may or may not have a value, the root never has one.
type node[K comparable, V any] struct {
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V] // back reference for the traversal, nil only for the root

	value    V
	hasValue bool

	// lazily resolved key, never authoritative, see Trie.resolveKey
	key    K
	hasKey bool
}

// child returns the left (bit == false) or right (bit == true) child, maybe nil.
func (n *node[K, V]) child(bit bool) *node[K, V] {
	if bit {
		return n.right
	}
	return n.left
}

// getOrCreateChild returns the child selected by bit,
// a missing child is created empty.
func (n *node[K, V]) getOrCreateChild(bit bool) *node[K, V] {
	if bit {
		if n.right == nil {
			n.right = &node[K, V]{parent: n}
		}
		return n.right
	}

	if n.left == nil {
		n.left = &node[K, V]{parent: n}
	}
	return n.left
}

// isEmpty reports whether the node has neither a value nor children.
func (n *node[K, V]) isEmpty() bool {
	return !n.hasValue && n.left == nil && n.right == nil
}

// isLeaf reports whether the node has no children.
func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// setValue replaces the value and returns the old one.
func (n *node[K, V]) setValue(val V) (old V, existed bool) {
	old, existed = n.value, n.hasValue
	n.value, n.hasValue = val, true
	return
}

// clearValue drops the value and the cached key.
func (n *node[K, V]) clearValue() {
	var zeroV V
	var zeroK K
	n.value, n.hasValue = zeroV, false
	n.key, n.hasKey = zeroK, false
}

// unlink removes n from its parent.
func (n *node[K, V]) unlink() {
	if n.parent.left == n {
		n.parent.left = nil
		return
	}
	n.parent.right = nil
}

// capturePath records the edges from n up to the root.
//
// The bits are indexed by the distance from n, bit 0 is the edge
// next to n, bit depth-1 the edge next to the root.
// The root itself has no path, depth is 0.
func (n *node[K, V]) capturePath() (path *bitset.BitSet, depth int) {
	path = bitset.New(0)
	for ; n.parent != nil; n = n.parent {
		if n.parent.right == n {
			path.Set(uint(depth))
		}
		depth++
	}
	return path, depth
}

// depth returns the distance to the root.
func (n *node[K, V]) depth() (depth int) {
	for ; n.parent != nil; n = n.parent {
		depth++
	}
	return
}

// String is useful during debugging, the key is shown only if resolved.
func (n *node[K, V]) String() string {
	if n.hasKey {
		return fmt.Sprintf("%v=%v", n.key, n.value)
	}
	path, depth := n.capturePath()
	return fmt.Sprintf("%d/%v=%v", depth, path, n.value)
}
