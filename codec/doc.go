// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package codec provides ready to use key codecs for the bintrie package.
//
//   - [Prefix]    netip.Prefix keys, IPv4 and IPv6 in one trie
//   - [Uint32]    fixed 32 bit keys, bit 0 is the most significant bit
//   - [BitString] keys written as strings of '0' and '1'
//
// All codecs are stateless zero sized values and safe for concurrent use.
//
// The Rebuild methods expect the captured path in the reversed order
// documented on bintrie.Codec: bit 0 of the path is the last key bit,
// bit depth-1 the first one.
package codec
