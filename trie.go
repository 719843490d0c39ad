// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"iter"
	"sync"

	"github.com/gaissmai/bintrie/internal/value"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Trie is an uncompressed binary bitwise trie, an ordered map from keys K
// to values V. The keys are analyzed bit by bit with the [Codec] passed
// to [New], one trie level per key bit.
//
// Keys are returned in pre-order: a key precedes all keys it is a prefix
// of, unrelated keys are ordered by their first differing bit, left (0)
// before right (1). Among prefix related keys the shortest comes first.
//
// A Trie is not safe for concurrent use, not even for concurrent reads,
// since the prefix views cache their sizes lazily. Callers must provide
// their own mutual exclusion.
//
// The revision counter of the Trie is NOT a concurrency mechanism, it
// only detects misuse in single-threaded code: iterators fail fast with
// [ErrConcurrentModification] if the Trie was modified behind their back.
//
// The zero value is an empty trie without codec, usable for lookups,
// iteration and printing. Put and the prefix queries need the codec,
// they return ErrInvalidArgument, use [New].
//
// A Trie must not be copied by value; always pass by pointer, use
// [Trie.Clone] for a copy.
type Trie[K comparable, V any] struct {
	// used by -copylocks checker from `go vet`.
	_ [0]sync.Mutex

	codec Codec[K]
	log   *zap.Logger

	// entry point for all lookups, never holds a value
	root *node[K, V]

	// the number of nodes with a value
	size int

	// incremented on every insert, value replacement and delete
	revision uint64

	// views are created on demand and reused
	keySet   *KeySet[K, V]
	values   *Values[K, V]
	entrySet *EntrySet[K, V]
}

// Option configures a [Trie].
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets the logger, the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// New returns an empty trie, analyzing keys with codec.
// New panics if codec is nil.
func New[K comparable, V any](codec Codec[K], opts ...Option) *Trie[K, V] {
	if codec == nil {
		panic("bintrie: codec must not be nil")
	}

	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Trie[K, V]{
		codec: codec,
		log:   o.log,
		root:  &node[K, V]{},
	}
}

// Codec returns the codec used by t.
func (t *Trie[K, V]) Codec() Codec[K] {
	return t.codec
}

// Size returns the number of keys in t.
func (t *Trie[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether t holds no keys.
func (t *Trie[K, V]) IsEmpty() bool {
	return t.size == 0
}

// validKey returns the bit length of key or an ErrInvalidArgument.
func (t *Trie[K, V]) validKey(key K) (int, error) {
	if err := t.mustHaveCodec(); err != nil {
		return 0, err
	}
	if value.IsNil(key) {
		return 0, errors.Wrap(ErrInvalidArgument, "nil key")
	}

	n := t.codec.Length(key)
	if n <= 0 {
		return 0, invalidKeyLen(key, n)
	}
	return n, nil
}

// Put associates val with key and returns the previous value, if any.
//
// Put returns ErrInvalidArgument for nil keys or values and for keys
// with a length <= 0, the trie is untouched in this case.
//
// Every successful Put bumps the revision, even a pure value replacement,
// running iterators fail fast afterwards.
func (t *Trie[K, V]) Put(key K, val V) (prev V, existed bool, err error) {
	if value.IsNil(val) {
		return prev, false, errors.Wrapf(ErrInvalidArgument, "nil value for key %v", key)
	}

	stopDepth, err := t.validKey(key)
	if err != nil {
		return prev, false, err
	}

	n := t.root
	for i := range stopDepth {
		n = n.getOrCreateChild(t.codec.BitAt(key, i))
	}

	if !n.hasValue {
		t.size++
	}

	// refresh an already resolved key, unresolved keys stay lazy
	if n.hasKey {
		n.key = key
	}

	t.revision++
	prev, existed = n.setValue(val)
	return prev, existed, nil
}

// PutAll inserts all key/value pairs from seq, in sequence order.
// It stops at the first invalid pair and returns the error.
func (t *Trie[K, V]) PutAll(seq iter.Seq2[K, V]) error {
	for key, val := range seq {
		if _, _, err := t.Put(key, val); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value associated with key and true, or false if key
// is not stored in t. Invalid keys are never stored.
func (t *Trie[K, V]) Get(key K) (val V, ok bool) {
	if n := t.getNode(key); n != nil {
		return n.value, true
	}
	return
}

// ContainsKey reports whether key is stored in t.
func (t *Trie[K, V]) ContainsKey(key K) bool {
	return t.getNode(key) != nil
}

// ContainsValue reports whether any key in t maps to val.
// Values are compared with their Equal method if they implement
// Equaler[V], with [reflect.DeepEqual] otherwise.
func (t *Trie[K, V]) ContainsValue(val V) bool {
	if value.IsNil(val) {
		return false
	}
	for n := t.firstNode(); n != nil; n = successor(n, nil) {
		if value.Equal(val, n.value) {
			return true
		}
	}
	return false
}

// getNode returns the node with a value for key, or nil.
func (t *Trie[K, V]) getNode(key K) *node[K, V] {
	if t.root == nil || value.IsNil(key) {
		return nil
	}

	stopDepth := t.codec.Length(key)
	if stopDepth <= 0 {
		return nil
	}

	n := t.root
	for i := range stopDepth {
		if n = n.child(t.codec.BitAt(key, i)); n == nil {
			return nil
		}
	}

	// an intermediate node without value is not a stored key
	if !n.hasValue {
		return nil
	}
	return n
}

// Remove deletes key from t and returns the removed value and true,
// or false if key was not stored.
func (t *Trie[K, V]) Remove(key K) (val V, ok bool) {
	n := t.getNode(key)
	if n == nil {
		return
	}

	val = n.value
	t.deleteNode(n)
	return val, true
}

// deleteNode clears the value of n and prunes the now empty nodes
// upwards, leaves must always have a value.
func (t *Trie[K, V]) deleteNode(n *node[K, V]) {
	if n == nil || !n.hasValue {
		return
	}

	t.size--
	t.revision++
	n.clearValue()

	// stop at the root or at the first node with a value or another child
	for n.parent != nil && n.isEmpty() {
		n.unlink()
		n = n.parent
	}
}

// Clear removes all keys from t.
func (t *Trie[K, V]) Clear() {
	if t.root != nil {
		t.root.left = nil
		t.root.right = nil
	}
	t.size = 0
	t.revision++
}

// resolveKey returns the key of the valued node n, rebuilt from the
// trie path with the codec on first use and cached afterwards.
func (t *Trie[K, V]) resolveKey(n *node[K, V]) K {
	if n.hasKey || !n.hasValue || n.parent == nil {
		return n.key
	}

	path, depth := n.capturePath()
	key := t.codec.Rebuild(path, depth)

	if value.IsNil(key) {
		t.mustNotHappen("codec %T rebuilt a nil key at depth %d", t.codec, depth)
	}

	// the rebuilt key must address the very same path
	if got := t.codec.Length(key); got != depth {
		t.mustNotHappen("rebuilt key %v has length %d, want %d", key, got, depth)
	}
	for i := range depth {
		if t.codec.BitAt(key, i) != path.Test(uint(depth-1-i)) {
			t.mustNotHappen("rebuilt key %v differs from trie path at bit %d", key, i)
		}
	}

	n.key, n.hasKey = key, true
	return key
}
