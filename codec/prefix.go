// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package codec

import (
	"net/netip"

	"github.com/bits-and-blooms/bitset"
)

// Prefix is the codec for netip.Prefix keys.
//
// The first key bit selects the address family, 0 for IPv4 and 1 for
// IPv6, followed by the masked address bits, most significant first.
// The length of a key is therefore 1 + Bits(), the default routes
// 0.0.0.0/0 and ::/0 are valid keys of length 1.
//
// Invalid prefixes and prefixes with host bits set, e.g. 10.0.0.1/8,
// have length 0 and are rejected by the trie. Use Masked() before.
//
// IPv4-mapped IPv6 prefixes are IPv6 prefixes, they are not unmapped.
type Prefix struct{}

// Length returns 1 + pfx.Bits() for a valid, masked prefix, 0 otherwise.
func (Prefix) Length(pfx netip.Prefix) int {
	if !pfx.IsValid() || pfx != pfx.Masked() {
		return 0
	}
	return 1 + pfx.Bits()
}

// BitAt returns the family bit for index 0, the address bit index-1 otherwise.
func (Prefix) BitAt(pfx netip.Prefix, index int) bool {
	addr := pfx.Addr()
	if index == 0 {
		return !addr.Is4()
	}
	return addrBit(addr, index-1)
}

// Rebuild returns the masked prefix addressed by path.
func (Prefix) Rebuild(path *bitset.BitSet, depth int) netip.Prefix {
	if depth <= 0 {
		return netip.Prefix{}
	}

	// path bit depth-1 is the first key bit
	at := func(i int) bool { return path.Test(uint(depth - 1 - i)) }

	bits := depth - 1
	if !at(0) {
		var a4 [4]byte
		for i := range bits {
			if at(i + 1) {
				a4[i>>3] |= 0x80 >> (i & 7)
			}
		}
		return netip.PrefixFrom(netip.AddrFrom4(a4), bits)
	}

	var a16 [16]byte
	for i := range bits {
		if at(i + 1) {
			a16[i>>3] |= 0x80 >> (i & 7)
		}
	}
	return netip.PrefixFrom(netip.AddrFrom16(a16), bits)
}

// addrBit returns the address bit i, most significant first.
func addrBit(addr netip.Addr, i int) bool {
	if addr.Is4() {
		a4 := addr.As4()
		return a4[i>>3]&(0x80>>(i&7)) != 0
	}
	a16 := addr.As16()
	return a16[i>>3]&(0x80>>(i&7)) != 0
}
