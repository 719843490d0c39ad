// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"fmt"
	"iter"
	"net/netip"
	"testing"

	"github.com/gaissmai/bintrie/codec"
)

// this file contains helpers for other test functions

// workLoadN to adjust loops for tests with -short
func workLoadN() int {
	if testing.Short() {
		return 100
	}
	return 1_000
}

// abbreviation and panic on non masked input
var mpp = func(s string) netip.Prefix {
	pfx := netip.MustParsePrefix(s)
	if pfx == pfx.Masked() {
		return pfx
	}
	panic(fmt.Sprintf("%s is not canonicalized as %s", s, pfx.Masked()))
}

// newBitTrie returns an empty trie over bit string keys.
func newBitTrie[V any](opts ...Option) *Trie[string, V] {
	return New[string, V](codec.BitString{}, opts...)
}

// newPfxTrie returns an empty trie over netip.Prefix keys.
func newPfxTrie[V any](opts ...Option) *Trie[netip.Prefix, V] {
	return New[netip.Prefix, V](codec.Prefix{}, opts...)
}

// bitTrieFrom inserts the keys with their index as value.
func bitTrieFrom(keys ...string) *Trie[string, int] {
	t := newBitTrie[int]()
	for i, key := range keys {
		if _, _, err := t.Put(key, i); err != nil {
			panic(err)
		}
	}
	return t
}

// collect the first elements of a Seq2, the keys.
func collectKeys[K, V any](seq iter.Seq2[K, V]) []K {
	var keys []K
	for k := range seq {
		keys = append(keys, k)
	}
	return keys
}

// drain returns all elements of a view iterator, the first error stops.
func drain[K comparable, V any, T any](it *Iterator[K, V, T]) ([]T, error) {
	var elems []T
	for it.HasNext() {
		elem, err := it.Next()
		if err != nil {
			return elems, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

// #########################################################

// tests for deep copies with Cloner interface
type MyInt int

var _ Cloner[*MyInt] = (*MyInt)(nil)

// implement the Cloner interface
func (i *MyInt) Clone() *MyInt {
	a := *i
	return &a
}
