// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package golden

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoldTrieInsertDelete(t *testing.T) {
	t.Parallel()
	gold := new(GoldTrie[int])

	_, existed := gold.Insert("01", 1)
	assert.False(t, existed)

	prev, existed := gold.Insert("01", 2)
	assert.True(t, existed)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 1, gold.Len())

	val, ok := gold.Get("01")
	assert.True(t, ok)
	assert.Equal(t, 2, val)

	val, ok = gold.Delete("01")
	assert.True(t, ok)
	assert.Equal(t, 2, val)

	_, ok = gold.Delete("01")
	assert.False(t, ok)
	assert.Equal(t, 0, gold.Len())
}

func TestGoldTrieOrder(t *testing.T) {
	t.Parallel()
	gold := new(GoldTrie[int])

	for i, key := range []string{"1", "011", "0", "01", "10", "00"} {
		gold.Insert(key, i)
	}

	want := []string{"0", "00", "01", "011", "1", "10"}
	assert.Equal(t, want, gold.AllSorted())
}

func TestGoldTrieRange(t *testing.T) {
	t.Parallel()
	gold := new(GoldTrie[int])

	for i, key := range []string{"0", "01", "011", "0110", "010", "1"} {
		gold.Insert(key, i)
	}

	assert.Equal(t, []string{"0", "01", "011"}, gold.PrefixOf("011", true))
	assert.Equal(t, []string{"0", "01"}, gold.PrefixOf("011", false))
	assert.Equal(t, []string{"01", "010", "011", "0110"}, gold.PrefixedBy("01", true))
	assert.Equal(t, []string{"010", "011", "0110"}, gold.PrefixedBy("01", false))

	items := gold.Range("0110", true, false, "01", true, true)
	assert.Equal(t, []string{"01", "011"}, keys(items))

	short, ok := gold.ShortestPrefixOf("0111", true)
	assert.True(t, ok)
	assert.Equal(t, "0", short.Key)

	long, ok := gold.LongestPrefixOf("0111", true)
	assert.True(t, ok)
	assert.Equal(t, "011", long.Key)

	_, ok = gold.LongestPrefixOf("1", false)
	assert.False(t, ok)
}
