// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

// ##################################################
//  stackless traversal via parent back references
// ##################################################
//
// The fact that intermediate nodes do not always have a value
// complicates an otherwise simple pre-order parent linkage traversal,
// valueless nodes are passed through transparently.
//
// The fence bounds the ascent: the traversal may visit the fence
// and its descendants, but never climbs above it.
// A nil fence means the whole trie.

// successor returns the next node with a value in pre-order, or nil.
func successor[K comparable, V any](n *node[K, V], fence *node[K, V]) *node[K, V] {
	var limit *node[K, V]
	if fence != nil {
		limit = fence.parent
	}

outer:
	for n != nil {
		// go down, left before right
		if n.left != nil {
			if !n.left.hasValue {
				n = n.left
				continue
			}
			return n.left
		}

		if n.right != nil {
			if !n.right.hasValue {
				n = n.right
				continue
			}
			return n.right
		}

		// we are a leaf, go up until we can switch to a right sibling
		for n.parent != nil && n.parent != limit {
			if n == n.parent.left && n.parent.right != nil {
				if !n.parent.right.hasValue {
					n = n.parent.right
					continue outer
				}
				return n.parent.right
			}
			n = n.parent
		}
		return nil
	}

	return nil
}

// predecessor returns the previous node with a value in pre-order, or nil.
func (t *Trie[K, V]) predecessor(n *node[K, V], fence *node[K, V]) *node[K, V] {
	var limit *node[K, V]
	if fence != nil {
		limit = fence.parent
	}

	for n != nil && n.parent != nil && n.parent != limit {
		// we are on the left, or we have no left sibling, so go up
		if n == n.parent.left || n.parent.left == nil {
			if !n.parent.hasValue {
				n = n.parent
				continue
			}
			return n.parent
		}

		// we are on the right and have a left sibling,
		// descend to the right-most leaf of the left sibling
		n = n.parent.left
		for !n.isLeaf() {
			if n.right != nil {
				n = n.right
			} else {
				n = n.left
			}
		}

		if !n.hasValue {
			t.mustNotHappen("leaf node without value: %v", n)
		}
		return n
	}

	return nil
}

// firstNode returns the first node with a value, or nil for an empty trie.
func (t *Trie[K, V]) firstNode() *node[K, V] {
	return successor(t.root, nil)
}

// lastNode returns the last node with a value, or nil for an empty trie.
// It relies on the fact that leaves always have a value.
func (t *Trie[K, V]) lastNode() *node[K, V] {
	n := t.root
	if n == nil {
		return nil
	}
	for !n.isLeaf() {
		if n.right != nil {
			n = n.right
		} else {
			n = n.left
		}
	}

	if n == t.root {
		return nil
	}
	return n
}

// First returns the first key in pre-order, the shortest and left-most one.
func (t *Trie[K, V]) First() (key K, val V, ok bool) {
	if n := t.firstNode(); n != nil {
		return t.resolveKey(n), n.value, true
	}
	return
}

// Last returns the last key in pre-order, the longest and right-most one.
func (t *Trie[K, V]) Last() (key K, val V, ok bool) {
	if n := t.lastNode(); n != nil {
		if !n.hasValue {
			t.mustNotHappen("leaf node without value: %v", n)
		}
		return t.resolveKey(n), n.value, true
	}
	return
}
