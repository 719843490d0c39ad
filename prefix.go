// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

// bounds restricts a view to a prefix range.
//
//	prefixedBy: low bound, all keys must be prefixed by it (descendants)
//	prefixOf:   high bound, all keys must be a prefix of it (ancestors)
//
// Both bounds are optional and have their own inclusive flag.
// If both are set, prefixedBy must be a prefix of prefixOf.
type bounds[K comparable] struct {
	prefixedBy     K
	hasPrefixedBy  bool
	prefixedByIncl bool

	prefixOf     K
	hasPrefixOf  bool
	prefixOfIncl bool
}

// prefixedByBounds, all keys under key.
func prefixedByBounds[K comparable](key K, inclusive bool) bounds[K] {
	return bounds[K]{prefixedBy: key, hasPrefixedBy: true, prefixedByIncl: inclusive}
}

// prefixOfBounds, all keys over key.
func prefixOfBounds[K comparable](key K, inclusive bool) bounds[K] {
	return bounds[K]{prefixOf: key, hasPrefixOf: true, prefixOfIncl: inclusive}
}

// unrestricted reports whether no bound is set.
func (b bounds[K]) unrestricted() bool {
	return !b.hasPrefixedBy && !b.hasPrefixOf
}

// withPrefixOf returns b with a new high bound, the low bound is kept.
func (b bounds[K]) withPrefixOf(key K, inclusive bool) bounds[K] {
	b.prefixOf, b.hasPrefixOf, b.prefixOfIncl = key, true, inclusive
	return b
}

// withPrefixedBy returns b with a new low bound, the high bound is kept.
func (b bounds[K]) withPrefixedBy(key K, inclusive bool) bounds[K] {
	b.prefixedBy, b.hasPrefixedBy, b.prefixedByIncl = key, true, inclusive
	return b
}

// isPrefix reports whether prefix and key are related as requested:
//
//	includePrefixOfKey:   prefix may be longer than key, key is a prefix of prefix
//	keyInclusive:         prefix and key may be equal
//	includePrefixedByKey: key may be longer than prefix, key is prefixed by prefix
//
// Keys of different bit values up to the shorter length are never related.
func (t *Trie[K, V]) isPrefix(prefix, key K, includePrefixOfKey, keyInclusive, includePrefixedByKey bool) bool {
	if keyInclusive && prefix == key {
		return true
	}

	prefixDepth := t.codec.Length(prefix)
	keyDepth := t.codec.Length(key)

	if (!includePrefixOfKey && keyDepth < prefixDepth) ||
		(!keyInclusive && keyDepth == prefixDepth) ||
		(!includePrefixedByKey && keyDepth > prefixDepth) {
		return false
	}

	for i := range min(prefixDepth, keyDepth) {
		if t.codec.BitAt(prefix, i) != t.codec.BitAt(key, i) {
			return false
		}
	}

	return true
}

// inRange reports whether key is within b.
// With forceInclusive the bound keys themselves are in range.
func (t *Trie[K, V]) inRange(b bounds[K], key K, forceInclusive bool) bool {
	if b.hasPrefixOf && !t.isPrefix(b.prefixOf, key, true, b.prefixOfIncl || forceInclusive, false) {
		return false
	}
	if b.hasPrefixedBy && !t.isPrefix(b.prefixedBy, key, false, b.prefixedByIncl || forceInclusive, true) {
		return false
	}
	return true
}

// cursor is the walk state of a single iterator, either the plain
// pre-order over the whole trie or the prefix engine over bounds.
//
// The prefix engine has two phases:
//
//	a) depth < prefixDepth: follow the bits of the driving key only,
//	   the node at prefixDepth becomes the upper fence.
//	b) depth >= prefixDepth: general successor traversal, but never
//	   above the fence, all descendants are in range.
//
// The driving key is prefixOf if set, prefixedBy otherwise.
// If both are set, prefixedBy is already a prefix of prefixOf, only
// minDepth must be respected and phase b) is never entered.
type cursor[K comparable, V any] struct {
	t *Trie[K, V]
	b bounds[K]

	plain       bool
	driver      K
	prefixDepth int
	minDepth    int

	depth int
	fence *node[K, V]
}

// newCursor, the bound keys must be valid.
func (t *Trie[K, V]) newCursor(b bounds[K]) *cursor[K, V] {
	c := &cursor[K, V]{t: t, b: b}

	if b.unrestricted() {
		c.plain = true
		return c
	}

	c.driver = b.prefixedBy
	if b.hasPrefixOf {
		c.driver = b.prefixOf
	}
	c.prefixDepth = t.codec.Length(c.driver)

	// minimum depth for nodes to be returned
	c.minDepth = 1
	if b.hasPrefixedBy {
		c.minDepth = t.codec.Length(b.prefixedBy)
		if !b.prefixedByIncl {
			c.minDepth++
		}
	}

	return c
}

// first returns the first node in range, or nil.
func (c *cursor[K, V]) first() *node[K, V] {
	if c.plain {
		return c.t.firstNode()
	}
	// must always start at root
	return c.next(c.t.root)
}

// next returns the node in range after n, or nil.
func (c *cursor[K, V]) next(n *node[K, V]) *node[K, V] {
	if c.plain {
		return successor(n, nil)
	}

	for n != nil {
		if c.depth >= c.prefixDepth {
			// prefixOf stops at its own key, all further nodes are longer
			if c.b.hasPrefixOf {
				return nil
			}
			// phase b), all nodes under the fence are in range
			return successor(n, c.fence)
		}

		// exclusive prefixOf, don't step onto the key itself
		if c.b.hasPrefixOf && !c.b.prefixOfIncl && c.depth+1 == c.prefixDepth {
			return nil
		}

		// phase a), traverse only the path of the driving key
		n = n.child(c.t.codec.BitAt(c.driver, c.depth))
		c.depth++

		if n == nil {
			return nil
		}

		if c.depth == c.prefixDepth {
			// force any further traversal to stay under this node
			c.fence = n
		}

		if n.hasValue && c.depth >= c.minDepth {
			return n
		}
	}

	return nil
}
