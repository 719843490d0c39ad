// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// equalerVal compares only the id, the note is ignored.
type equalerVal struct {
	id   int
	note string
}

func (v equalerVal) Equal(o equalerVal) bool { return v.id == o.id }

var _ Equaler[equalerVal] = equalerVal{}

// hasherVal has its own hash.
type hasherVal int

func (v hasherVal) Hash() uint64 { return uint64(v) * 31 }

// choosyGetter is a foreign map that accepts no keys but its own.
type choosyGetter map[any]int

func (g choosyGetter) Get(key string) (int, bool) {
	val, ok := g[any(key).(fmtStringer)]
	return val, ok
}

func (g choosyGetter) Size() int { return len(g) }

type fmtStringer interface{ String() string }

func TestEqualTries(t *testing.T) {
	t.Parallel()

	a := bitTrieFrom("0", "01", "011", "1")
	b := bitTrieFrom("0", "01", "011", "1")

	assert.True(t, a.Equal(a), "self")
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	// same keys, other insert order, same structure
	c := newBitTrie[int]()
	_, _, _ = c.Put("1", 3)
	_, _, _ = c.Put("011", 2)
	_, _, _ = c.Put("01", 1)
	_, _, _ = c.Put("0", 0)
	assert.True(t, a.Equal(c))

	_, _, _ = c.Put("1", 4)
	assert.False(t, a.Equal(c), "value differs")

	_, _, _ = c.Put("1", 3)
	_, _, _ = c.Put("11", 5)
	assert.False(t, a.Equal(c), "size differs")

	_, _ = c.Remove("11")
	assert.True(t, a.Equal(c), "pruned")

	_, _ = c.Remove("01")
	_, _, _ = c.Put("00", 1)
	assert.False(t, a.Equal(c), "key differs")

	var nilTrie *Trie[string, int]
	assert.False(t, a.Equal(nilTrie))
	assert.False(t, a.Equal(nil))
}

func TestEqualEmpty(t *testing.T) {
	t.Parallel()

	a := newBitTrie[int]()
	b := bitTrieFrom("0110")
	_, _ = b.Remove("0110")

	assert.True(t, a.Equal(b))
	assert.True(t, a.EqualMap(map[string]int{}))
	assert.True(t, a.EqualMap(nil))
}

func TestEqualMap(t *testing.T) {
	t.Parallel()
	trie := bitTrieFrom("0", "01", "1")

	assert.True(t, trie.EqualMap(map[string]int{"0": 0, "01": 1, "1": 2}))
	assert.False(t, trie.EqualMap(map[string]int{"0": 0, "01": 1, "1": 3}))
	assert.False(t, trie.EqualMap(map[string]int{"0": 0, "01": 1, "10": 2}))
	assert.False(t, trie.EqualMap(map[string]int{"0": 0, "01": 1}))
}

func TestEqualForeignPanic(t *testing.T) {
	t.Parallel()
	trie := bitTrieFrom("0")

	assert.False(t, trie.Equal(choosyGetter{"x": 1}), "type assertion panic recovered")
}

func TestEqualEqualer(t *testing.T) {
	t.Parallel()

	a := newBitTrie[equalerVal]()
	b := newBitTrie[equalerVal]()
	_, _, _ = a.Put("01", equalerVal{1, "foo"})
	_, _, _ = b.Put("01", equalerVal{1, "bar"})

	assert.True(t, a.Equal(b))
	assert.True(t, a.ContainsValue(equalerVal{id: 1}))
}

func TestEqualPrefixMap(t *testing.T) {
	t.Parallel()
	trie := bitTrieFrom("0", "01", "011", "1")

	pm, err := trie.PrefixedByMap("01", true)
	require.NoError(t, err)

	other := bitTrieFrom("01")
	_, _, _ = other.Put("01", 1)
	_, _, _ = other.Put("011", 2)

	assert.True(t, pm.Equal(other))
	assert.True(t, other.Equal(pm))
	assert.True(t, pm.Equal(goMap[string, int]{"01": 1, "011": 2}))
	assert.Equal(t, other.Hash(), pm.Hash())
}

func TestHash(t *testing.T) {
	t.Parallel()

	m := map[string]int{"0": 0, "01": 1, "011": 2, "1": 3}

	trie := newBitTrie[int]()
	require.NoError(t, trie.PutAll(maps.All(m)))

	assert.Equal(t, HashOf(maps.All(m)), trie.Hash(), "same as Go map")
	assert.Equal(t, bitTrieFrom("0", "01", "011", "1").Hash(), trie.Hash())

	_, _, _ = trie.Put("1", 4)
	assert.NotEqual(t, HashOf(maps.All(m)), trie.Hash())

	assert.Equal(t, uint64(0), newBitTrie[int]().Hash(), "empty")
}

func TestHashHasher(t *testing.T) {
	t.Parallel()

	trie := newBitTrie[hasherVal]()
	_, _, _ = trie.Put("01", 2)

	want := HashOf(maps.All(map[string]hasherVal{"01": 2}))
	assert.Equal(t, want, trie.Hash())
}
