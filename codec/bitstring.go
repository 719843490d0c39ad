// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package codec

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// BitString is the codec for keys written as strings of '0' and '1',
// e.g. "0110". The bit length is the string length, the empty string
// and strings with any other rune are invalid keys of length 0.
//
// BitString keys make the structure of a trie visible, they are
// handy for tests and examples.
type BitString struct{}

// Length returns len(key) or 0 for an invalid key.
func (BitString) Length(key string) int {
	for i := range len(key) {
		if key[i] != '0' && key[i] != '1' {
			return 0
		}
	}
	return len(key)
}

// BitAt reports whether key[index] is '1'.
func (BitString) BitAt(key string, index int) bool {
	return key[index] == '1'
}

// Rebuild returns the bit string addressed by path.
func (BitString) Rebuild(path *bitset.BitSet, depth int) string {
	var sb strings.Builder
	sb.Grow(depth)

	for i := range depth {
		if path.Test(uint(depth - 1 - i)) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
