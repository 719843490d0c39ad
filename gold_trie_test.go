// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"math/rand/v2"
	"testing"

	"github.com/gaissmai/bintrie/internal/golden"
	"github.com/gaissmai/bintrie/internal/tests/random"
	"github.com/stretchr/testify/require"
)

const goldMaxLen = 10

// goldPairs returns a trie and the golden model with the same random content.
func goldPairs(prng *rand.Rand, n int) (*Trie[string, int], *golden.GoldTrie[int]) {
	trie := newBitTrie[int]()
	gold := new(golden.GoldTrie[int])

	for _, key := range random.BitStrings(prng, n, goldMaxLen) {
		val := prng.IntN(1_000)
		if _, _, err := trie.Put(key, val); err != nil {
			panic(err)
		}
		gold.Insert(key, val)
	}
	return trie, gold
}

func goldKeys(items []golden.GoldItem[int]) []string {
	var keys []string
	for _, item := range items {
		keys = append(keys, item.Key)
	}
	return keys
}

func TestGoldInsertDelete(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	for range 10 {
		trie, gold := goldPairs(prng, workLoadN())
		require.Equal(t, gold.Len(), trie.Size())
		require.Equal(t, gold.AllSorted(), collectKeys(trie.All()))

		// replace some values
		for _, key := range gold.AllSorted() {
			if prng.IntN(4) == 0 {
				gPrev, _ := gold.Insert(key, -1)
				prev, existed, err := trie.Put(key, -1)
				require.NoError(t, err)
				require.True(t, existed)
				require.Equal(t, gPrev, prev)
			}
		}

		// random deletes, with misses
		for range gold.Len() {
			key := random.BitString(prng, goldMaxLen)
			gVal, gOk := gold.Delete(key)
			val, ok := trie.Remove(key)
			require.Equal(t, gOk, ok, "Remove(%q)", key)
			require.Equal(t, gVal, val, "Remove(%q)", key)
		}

		require.Equal(t, gold.Len(), trie.Size())
		for _, item := range gold.Sorted() {
			val, ok := trie.Get(item.Key)
			require.True(t, ok)
			require.Equal(t, item.Val, val)
		}

		s := trie.nodeStats()
		require.Equal(t, trie.Size(), s.values)
		require.LessOrEqual(t, s.maxDep, goldMaxLen)
	}
}

func TestGoldBackward(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))
	trie, gold := goldPairs(prng, workLoadN())

	want := gold.AllSorted()
	got := collectKeys(trie.Backward())
	require.Len(t, got, len(want))

	for i := range want {
		require.Equal(t, want[len(want)-1-i], got[i])
	}
}

func TestGoldPrefixQueries(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))
	trie, gold := goldPairs(prng, workLoadN())

	for range workLoadN() {
		probe := random.BitString(prng, goldMaxLen+2)

		for _, incl := range []bool{true, false} {
			pm, err := trie.PrefixOfMap(probe, incl)
			require.NoError(t, err)
			require.Equal(t, nilIfEmpty(gold.PrefixOf(probe, incl)), nilIfEmpty(collectKeys(pm.All())),
				"PrefixOf(%q, %v)", probe, incl)
			require.Equal(t, len(gold.PrefixOf(probe, incl)), pm.Size())

			pm, err = trie.PrefixedByMap(probe, incl)
			require.NoError(t, err)
			require.Equal(t, nilIfEmpty(gold.PrefixedBy(probe, incl)), nilIfEmpty(collectKeys(pm.All())),
				"PrefixedBy(%q, %v)", probe, incl)
			require.Equal(t, len(gold.PrefixedBy(probe, incl)), pm.Size())

			gItem, gOk := gold.LongestPrefixOf(probe, incl)
			key, val, ok := trie.LongestPrefixOf(probe, incl)
			require.Equal(t, gOk, ok)
			require.Equal(t, gItem.Key, key)
			require.Equal(t, gItem.Val, val)

			gItem, gOk = gold.ShortestPrefixOf(probe, incl)
			key, val, ok = trie.ShortestPrefixOf(probe, incl)
			require.Equal(t, gOk, ok)
			require.Equal(t, gItem.Key, key)
			require.Equal(t, gItem.Val, val)
		}
	}
}

func TestGoldNestedRanges(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))
	trie, gold := goldPairs(prng, workLoadN())

	for range workLoadN() {
		probe := random.BitString(prng, goldMaxLen+2)
		if len(probe) < 2 {
			continue
		}
		low := probe[:1+prng.IntN(len(probe)-1)]

		for _, lowIncl := range []bool{true, false} {
			for _, highIncl := range []bool{true, false} {
				byMap, err := trie.PrefixedByMap(low, lowIncl)
				require.NoError(t, err)

				pm, err := byMap.PrefixOfMap(probe, highIncl)
				require.NoError(t, err)

				want := goldKeys(gold.Range(probe, true, highIncl, low, true, lowIncl))
				require.Equal(t, want, collectKeys(pm.All()),
					"PrefixedBy(%q, %v).PrefixOf(%q, %v)", low, lowIncl, probe, highIncl)
				require.Equal(t, len(want), pm.Size())
			}
		}
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
