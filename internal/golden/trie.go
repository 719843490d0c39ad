// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden is a simple and slow ordered map over bit string keys,
// implemented as a slice of items, as a golden reference for bintrie.
//
// Keys are strings of '0' and '1'. Their lexicographic order, '0' < '1'
// and a prefix before all of its extensions, is the pre-order of the trie.
package golden

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// GoldTrie is the slow reference model.
type GoldTrie[V any] []GoldItem[V]

// GoldItem is a single key/value pair.
type GoldItem[V any] struct {
	Key string
	Val V
}

func (g GoldItem[V]) String() string {
	return fmt.Sprintf("(%s, %v)", g.Key, g.Val)
}

// Insert sets val for key and returns the previous value, if any.
func (t *GoldTrie[V]) Insert(key string, val V) (prev V, existed bool) {
	for i, item := range *t {
		if item.Key == key {
			prev = item.Val
			(*t)[i].Val = val // de-dupe
			return prev, true
		}
	}
	*t = append(*t, GoldItem[V]{key, val})
	return prev, false
}

// Delete removes key and returns the removed value.
func (t *GoldTrie[V]) Delete(key string) (val V, exists bool) {
	for i, item := range *t {
		if item.Key == key {
			*t = slices.Delete(*t, i, i+1)
			return item.Val, true
		}
	}
	return val, false
}

// Get returns the value for key.
func (t GoldTrie[V]) Get(key string) (val V, ok bool) {
	for _, item := range t {
		if item.Key == key {
			return item.Val, true
		}
	}
	return val, false
}

// Len returns the number of items.
func (t GoldTrie[V]) Len() int {
	return len(t)
}

// Sorted returns a sorted copy of all items.
func (t GoldTrie[V]) Sorted() []GoldItem[V] {
	result := slices.Clone(t)
	slices.SortFunc(result, CmpItem[V])
	return result
}

// AllSorted returns all keys in trie order.
func (t GoldTrie[V]) AllSorted() []string {
	return keys(t.Sorted())
}

// PrefixOf returns the sorted keys that are a prefix of key,
// key itself included if keyInclusive.
func (t GoldTrie[V]) PrefixOf(key string, keyInclusive bool) []string {
	return keys(t.Range(key, true, keyInclusive, "", false, false))
}

// PrefixedBy returns the sorted keys that are prefixed by key,
// key itself included if keyInclusive.
func (t GoldTrie[V]) PrefixedBy(key string, keyInclusive bool) []string {
	return keys(t.Range("", false, false, key, true, keyInclusive))
}

// Range returns the sorted items that are a prefix of prefixOf and are
// prefixed by prefixedBy, each bound is optional and has its own
// inclusive flag.
func (t GoldTrie[V]) Range(prefixOf string, hasPrefixOf, prefixOfIncl bool,
	prefixedBy string, hasPrefixedBy, prefixedByIncl bool,
) []GoldItem[V] {
	var result []GoldItem[V]

	for _, item := range t.Sorted() {
		if hasPrefixOf && !related(item.Key, prefixOf, prefixOfIncl) {
			continue
		}
		if hasPrefixedBy && !related(prefixedBy, item.Key, prefixedByIncl) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// ShortestPrefixOf returns the first item of PrefixOf.
func (t GoldTrie[V]) ShortestPrefixOf(key string, keyInclusive bool) (item GoldItem[V], ok bool) {
	items := t.Range(key, true, keyInclusive, "", false, false)
	if len(items) == 0 {
		return item, false
	}
	return items[0], true
}

// LongestPrefixOf returns the last item of PrefixOf.
func (t GoldTrie[V]) LongestPrefixOf(key string, keyInclusive bool) (item GoldItem[V], ok bool) {
	items := t.Range(key, true, keyInclusive, "", false, false)
	if len(items) == 0 {
		return item, false
	}
	return items[len(items)-1], true
}

// related reports whether short is a prefix of long.
func related(short, long string, inclusive bool) bool {
	if short == long {
		return inclusive
	}
	return strings.HasPrefix(long, short)
}

// CmpItem compares items by key in trie order.
func CmpItem[V any](a, b GoldItem[V]) int {
	return cmp.Compare(a.Key, b.Key)
}

func keys[V any](items []GoldItem[V]) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, item.Key)
	}
	return result
}
