// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random provides deterministic generators for test keys,
// all driven by a caller supplied, seeded prng.
package random

import (
	"fmt"
	"math/rand/v2"
	"net/netip"
	"strings"
)

// mpp is an abbreviation and panics on non masked prefixes.
var mpp = func(s string) netip.Prefix {
	pfx := netip.MustParsePrefix(s)
	if pfx == pfx.Masked() {
		return pfx
	}
	panic(fmt.Sprintf("%s is not canonicalized as %s", s, pfx.Masked()))
}

// BitString returns a random key of '0' and '1' with 1..maxLen bits.
func BitString(prng *rand.Rand, maxLen int) string {
	n := 1 + prng.IntN(maxLen)

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte('0' + byte(prng.IntN(2)))
	}
	return sb.String()
}

// BitStrings returns n distinct random bit string keys, see [BitString].
// The key space must be large enough, 2^(maxLen+1)-2 > n.
func BitStrings(prng *rand.Rand, n, maxLen int) []string {
	set := make(map[string]struct{}, n)
	keys := make([]string, 0, n)

	for len(keys) < n {
		key := BitString(prng, maxLen)
		if _, ok := set[key]; !ok {
			set[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	return keys
}

// Uint32 returns a random uint32 key.
func Uint32(prng *rand.Rand) uint32 {
	return prng.Uint32()
}

// Prefix returns a randomly generated prefix, IPv4 or IPv6.
func Prefix(prng *rand.Rand) netip.Prefix {
	if prng.IntN(2) == 1 {
		return Prefix4(prng)
	}
	return Prefix6(prng)
}

// Prefix4 returns a random masked IPv4 prefix with 0..32 bits.
func Prefix4(prng *rand.Rand) netip.Prefix {
	bits := prng.IntN(33)
	return netip.PrefixFrom(IP4(prng), bits).Masked()
}

// Prefix6 returns a random masked IPv6 prefix with 0..128 bits.
func Prefix6(prng *rand.Rand) netip.Prefix {
	bits := prng.IntN(129)
	return netip.PrefixFrom(IP6(prng), bits).Masked()
}

func IP4(prng *rand.Rand) netip.Addr {
	var b [4]byte
	for i := range b {
		b[i] = byte(prng.UintN(256))
	}
	return netip.AddrFrom4(b)
}

func IP6(prng *rand.Rand) netip.Addr {
	var b [16]byte
	for i := range b {
		b[i] = byte(prng.UintN(256))
	}
	return netip.AddrFrom16(b)
}

func IP(prng *rand.Rand) netip.Addr {
	if prng.IntN(2) == 1 {
		return IP4(prng)
	}
	return IP6(prng)
}

// RealWorldPrefixes returns n distinct prefixes, half IPv4 and half IPv6,
// with prefix lengths and ranges as seen in the global routing table.
func RealWorldPrefixes(prng *rand.Rand, n int) []netip.Prefix {
	pfxs := make([]netip.Prefix, 0, n)
	pfxs = append(pfxs, realWorld(prng, n/2, Prefix4, keepRealWorld4)...)
	pfxs = append(pfxs, realWorld(prng, n-len(pfxs), Prefix6, keepRealWorld6)...)

	prng.Shuffle(len(pfxs), func(i, j int) {
		pfxs[i], pfxs[j] = pfxs[j], pfxs[i]
	})

	return pfxs
}

// realWorld collects n distinct prefixes from gen, filtered by keep.
func realWorld(prng *rand.Rand, n int, gen func(*rand.Rand) netip.Prefix, keep func(netip.Prefix) bool) []netip.Prefix {
	set := make(map[netip.Prefix]struct{}, n)
	pfxs := make([]netip.Prefix, 0, n)

	for len(pfxs) < n {
		pfx := gen(prng)
		if !keep(pfx) {
			continue
		}
		if _, ok := set[pfx]; !ok {
			set[pfx] = struct{}{}
			pfxs = append(pfxs, pfx)
		}
	}
	return pfxs
}

// keepRealWorld4, /8../28 outside the reserved 240.0.0.0/8.
func keepRealWorld4(pfx netip.Prefix) bool {
	return pfx.Bits() >= 8 && pfx.Bits() <= 28 && !pfx.Overlaps(mpp("240.0.0.0/8"))
}

// keepRealWorld6, /16../56 global unicast up to 2c0f::/16.
func keepRealWorld6(pfx netip.Prefix) bool {
	if pfx.Bits() < 16 || pfx.Bits() > 56 {
		return false
	}
	if !pfx.Overlaps(mpp("2000::/3")) {
		return false
	}
	return pfx.Addr().Compare(mpp("2c0f::/16").Addr()) != 1
}
