// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"bytes"
	"math/rand/v2"
	"net/netip"
	"testing"

	"github.com/gaissmai/bintrie/codec"
	"github.com/gaissmai/bintrie/internal/tests/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))
	trie, _ := goldPairs(prng, workLoadN())

	buf, err := trie.MarshalBinary()
	require.NoError(t, err)

	restored := newBitTrie[int]()
	require.NoError(t, restored.UnmarshalBinary(buf))

	assert.True(t, restored.Equal(trie))
	assert.Equal(t, trie.Hash(), restored.Hash())
	assert.Equal(t, trie.nodeStats(), restored.nodeStats(), "same structure")
}

func TestSnapshotPrefixes(t *testing.T) {
	t.Parallel()
	prng := rand.New(rand.NewPCG(42, 42))

	trie := newPfxTrie[string]()
	for _, pfx := range random.RealWorldPrefixes(prng, workLoadN()) {
		_, _, err := trie.Put(pfx, pfx.String())
		require.NoError(t, err)
	}
	_, _, _ = trie.Put(mpp("0.0.0.0/0"), "default")
	_, _, _ = trie.Put(mpp("::/0"), "default")

	w := new(bytes.Buffer)
	require.NoError(t, trie.EncodeTo(w))

	restored := newPfxTrie[string]()
	require.NoError(t, restored.DecodeFrom(w))
	assert.True(t, restored.Equal(trie))

	val, ok := restored.Get(mpp("::/0"))
	assert.True(t, ok)
	assert.Equal(t, "default", val)
}

func TestSnapshotReplaces(t *testing.T) {
	t.Parallel()

	src := bitTrieFrom("0", "1")
	buf, err := src.MarshalBinary()
	require.NoError(t, err)

	dst := bitTrieFrom("00", "01", "11")
	it := dst.KeySet().Iterator()

	require.NoError(t, dst.UnmarshalBinary(buf))
	assert.Equal(t, []string{"0", "1"}, collectKeys(dst.All()))

	// running iterators notice the restore
	_, err = it.Next()
	assert.ErrorIs(t, err, ErrConcurrentModification)
}

func TestSnapshotErrors(t *testing.T) {
	t.Parallel()

	encode := func(items ...any) []byte {
		w := new(bytes.Buffer)
		enc := msgpack.NewEncoder(w)
		for _, item := range items {
			require.NoError(t, enc.Encode(item))
		}
		return w.Bytes()
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated", encode(2, "0", 1)},
		{"negative size", encode(-1)},
		{"duplicate key", encode(2, "0", 1, "0", 2)},
		{"invalid key", encode(1, "0x", 1)},
		{"wrong key type", encode(1, 42, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			trie := bitTrieFrom("0110")
			rev := trie.revision

			assert.Error(t, trie.UnmarshalBinary(tt.data))
			assert.Equal(t, []string{"0110"}, collectKeys(trie.All()), "unchanged")
			assert.Equal(t, rev, trie.revision)
		})
	}
}

func TestSnapshotWithoutCodec(t *testing.T) {
	t.Parallel()

	buf, err := bitTrieFrom("0").MarshalBinary()
	require.NoError(t, err)

	trie := new(Trie[string, int])
	assert.ErrorIs(t, trie.UnmarshalBinary(buf), ErrInvalidArgument)
	assert.ErrorIs(t, trie.UnmarshalJSON([]byte(`{}`)), ErrInvalidArgument)
}

func TestSnapshotLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	trie := New[uint32, string](codec.Uint32{}, WithLogger(zap.New(core)))

	src := New[uint32, string](codec.Uint32{})
	_, _, _ = src.Put(7, "seven")
	_, _, _ = src.Put(0xFFFF_FFFF, "max")

	buf, err := src.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, trie.UnmarshalBinary(buf))

	entries := logs.FilterMessage("trie restored").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["size"])
}

func TestJSON(t *testing.T) {
	t.Parallel()
	trie := bitTrieFrom("01", "0")

	buf, err := trie.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":2,"entries":[{"key":"0","value":1},{"key":"01","value":0}]}`, string(buf))

	restored := newBitTrie[int]()
	require.NoError(t, restored.UnmarshalJSON(buf))
	assert.True(t, restored.Equal(trie))

	empty, err := newBitTrie[int]().MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":0,"entries":[]}`, string(empty))
}

func TestJSONPrefixes(t *testing.T) {
	t.Parallel()
	trie := newPfxTrie[int]()
	_, _, _ = trie.Put(mpp("10.0.0.0/8"), 1)
	_, _, _ = trie.Put(mpp("2001:db8::/32"), 2)

	buf, err := trie.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":2,"entries":[{"key":"10.0.0.0/8","value":1},{"key":"2001:db8::/32","value":2}]}`, string(buf))

	restored := newPfxTrie[int]()
	require.NoError(t, restored.UnmarshalJSON(buf))

	val, ok := restored.Get(netip.MustParsePrefix("2001:db8::/32"))
	assert.True(t, ok)
	assert.Equal(t, 2, val)
}

func TestJSONErrors(t *testing.T) {
	t.Parallel()

	for _, data := range []string{
		`[`,
		`{"size":2,"entries":[{"key":"0","value":1}]}`,
		`{"size":1,"entries":[{"key":"","value":1}]}`,
		`{"size":1,"entries":[{"key":"0","value":"one"}]}`,
	} {
		trie := bitTrieFrom("1")
		assert.Error(t, trie.UnmarshalJSON([]byte(data)), data)
		assert.True(t, trie.ContainsKey("1"), "unchanged")
	}
}
