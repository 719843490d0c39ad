// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"github.com/bits-and-blooms/bitset"
)

// Codec maps the opaque key type K to and from a sequence of bits.
//
// All methods must be pure functions, the trie calls them freely
// and caches nothing but the keys returned by Rebuild.
//
// Length returns the number of bits in key, a length <= 0 marks
// an invalid key.
//
// BitAt returns the bit at index, false means left and true means right,
// for 0 <= index < Length(key).
//
// Rebuild materializes a key from a captured trie path of depth bits.
// ATTENTION: the path is indexed by the distance from the node, not from
// the root:
//
//	path bit 0       => edge between the node and its parent
//	path bit depth-1 => edge between the root and its child
//
// so for every valid key k with length n:
//
//	BitAt(Rebuild(path(k), n), i) == BitAt(k, i) == path.Test(n-1-i)
type Codec[K any] interface {
	Length(key K) int
	BitAt(key K, index int) bool
	Rebuild(path *bitset.BitSet, depth int) K
}
