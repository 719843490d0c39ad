// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package codec

import (
	"github.com/bits-and-blooms/bitset"
)

// Uint32 is the codec for fixed width uint32 keys, all keys have
// length 32 and bit 0 is the most significant bit.
//
// No key is a prefix of another, the trie is an ordered set of
// unsigned integers in ascending numeric order.
type Uint32 struct{}

// Length is always 32.
func (Uint32) Length(uint32) int {
	return 32
}

// BitAt returns bit index, counted from the most significant bit.
func (Uint32) BitAt(key uint32, index int) bool {
	return key&(1<<(31-index)) != 0
}

// Rebuild returns the key addressed by path.
func (Uint32) Rebuild(path *bitset.BitSet, depth int) (key uint32) {
	for i := range min(depth, 32) {
		if path.Test(uint(depth - 1 - i)) {
			key |= 1 << (31 - i)
		}
	}
	return key
}
