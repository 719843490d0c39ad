// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bintrie provides an uncompressed binary bitwise trie, an ordered
// map with prefix aware range queries for keys like IP addresses, CIDR
// blocks or plain bit strings.
//
// The trie knows nothing about the keys, a [Codec] maps them to a sequence
// of bits. Ready to use codecs are in the subpackage codec:
//
//	rt := bintrie.New[netip.Prefix, string](codec.Prefix{})
//	rt.Put(netip.MustParsePrefix("10.0.0.0/8"), "hop-a")
//	rt.Put(netip.MustParsePrefix("10.1.0.0/16"), "hop-b")
//
//	// longest-prefix-match
//	pfx, val, ok := rt.LongestPrefixOf(netip.MustParsePrefix("10.1.2.3/32"), true)
//
// Keys are ordered in pre-order, a key precedes all keys it is a prefix of.
// Besides the usual map surface the trie offers:
//
//   - ShortestPrefixOf / LongestPrefixOf: the stored prefixes of a key
//   - PrefixOfMap / PrefixOfValues:       live views on all supernets of a key
//   - PrefixedByMap / PrefixedByValues:   live views on all subnets of a key
//
// The views are backed by the trie, modifications through a view are
// modifications of the trie and vice versa. Views may be nested,
// the bounds are combined.
//
// All iterators are fail-fast, they return [ErrConcurrentModification]
// or panic in a range loop, if the trie was modified behind their back.
//
// The trie is not safe for concurrent use, see [Trie].
package bintrie
