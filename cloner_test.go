// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneNil(t *testing.T) {
	t.Parallel()
	var trie *Trie[string, int]
	assert.Nil(t, trie.Clone())
}

func TestCloneEmpty(t *testing.T) {
	t.Parallel()
	trie := newBitTrie[int]()
	clone := trie.Clone()

	assert.True(t, clone.IsEmpty())
	assert.True(t, clone.Equal(trie))
	assert.Equal(t, trie.Codec(), clone.Codec())
}

func TestCloneIndependent(t *testing.T) {
	t.Parallel()
	trie := bitTrieFrom("0", "01", "011", "1")
	first, _, _ := trie.First() // resolve a key before cloning

	clone := trie.Clone()
	require.True(t, clone.Equal(trie))
	assert.Equal(t, trie.nodeStats(), clone.nodeStats())

	cFirst, _, _ := clone.First()
	assert.Equal(t, first, cFirst)

	_, _, _ = clone.Put("11", 4)
	_, _ = clone.Remove("0")

	assert.Equal(t, []string{"0", "01", "011", "1"}, collectKeys(trie.All()))
	assert.Equal(t, []string{"01", "011", "1", "11"}, collectKeys(clone.All()))

	// the parent links point into the clone
	for n := range allNodes(clone.root) {
		for _, c := range []*node[string, int]{n.left, n.right} {
			if c != nil {
				require.Same(t, n, c.parent)
			}
		}
	}

	// iterators of the original are not affected
	it := trie.KeySet().Iterator()
	_, _, _ = clone.Put("10", 5)
	_, err := it.Next()
	assert.NoError(t, err)
}

func TestCloneDeep(t *testing.T) {
	t.Parallel()
	trie := newBitTrie[*MyInt]()

	val := MyInt(1)
	_, _, _ = trie.Put("0110", &val)

	clone := trie.Clone()
	got, ok := clone.Get("0110")
	require.True(t, ok)

	assert.NotSame(t, &val, got, "Cloner used")
	assert.Equal(t, val, *got)
}

func TestCloneShallow(t *testing.T) {
	t.Parallel()
	trie := newBitTrie[*int]()

	val := 1
	_, _, _ = trie.Put("0110", &val)

	got, _ := trie.Clone().Get("0110")
	assert.Same(t, &val, got, "no Cloner, copied by assignment")
}
