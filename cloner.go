// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"github.com/gaissmai/bintrie/internal/value"
)

// Cloner is an interface that enables deep cloning of values of type V.
// If a value implements Cloner[V], [Trie.Clone] uses its Clone method
// to perform deep copies.
type Cloner[V any] interface {
	Clone() V
}

// Clone returns a copy of the trie with the same codec and logger.
// The payload of type V is shallow copied, but if type V implements
// the [Cloner] interface, the values are cloned.
//
// The copy has the same node structure and is independent of t,
// cached keys are carried over.
func (t *Trie[K, V]) Clone() *Trie[K, V] {
	if t == nil {
		return nil
	}
	if t.root == nil {
		return new(Trie[K, V])
	}

	c := &Trie[K, V]{
		codec: t.codec,
		log:   t.log,
		root:  &node[K, V]{},
		size:  t.size,
	}

	cloneRec(t.root, c.root)
	return c
}

// cloneRec copies the children of src below dst, rec-descent.
func cloneRec[K comparable, V any](src, dst *node[K, V]) {
	if src.left != nil {
		dst.left = src.left.cloneNode(dst)
		cloneRec(src.left, dst.left)
	}
	if src.right != nil {
		dst.right = src.right.cloneNode(dst)
		cloneRec(src.right, dst.right)
	}
}

// cloneNode returns a flat copy of n below parent, without children.
func (n *node[K, V]) cloneNode(parent *node[K, V]) *node[K, V] {
	c := &node[K, V]{
		parent: parent,
		key:    n.key,
		hasKey: n.hasKey,
	}
	if n.hasValue {
		c.value, c.hasValue = value.CloneVal(n.value), true
	}
	return c
}
