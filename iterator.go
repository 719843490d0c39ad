// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"fmt"
	"iter"

	"github.com/gaissmai/bintrie/internal/value"
	"github.com/pkg/errors"
)

// Iterator is a fail-fast, ascending iterator over a trie or a prefix range.
// T is the key, the value or the [Entry], depending on the view
// the iterator was created from.
//
// An Iterator captures the revision of the trie at creation. Next fails
// with [ErrConcurrentModification] if the trie was modified since then,
// except by the iterator's own Remove.
//
//	it := trie.EntrySet().Iterator()
//	for it.HasNext() {
//		e, err := it.Next()
//		if err != nil {
//			return err
//		}
//		if stale(e.Value()) {
//			if err := it.Remove(); err != nil {
//				return err
//			}
//		}
//	}
type Iterator[K comparable, V any, T any] struct {
	t        *Trie[K, V]
	c        *cursor[K, V]
	emit     func(*node[K, V]) T
	expected uint64

	next         *node[K, V]
	lastReturned *node[K, V]
}

// newIterator, the bounds must be valid.
func newIterator[K comparable, V any, T any](t *Trie[K, V], b bounds[K], emit func(*node[K, V]) T) *Iterator[K, V, T] {
	it := &Iterator[K, V, T]{
		t:        t,
		c:        t.newCursor(b),
		emit:     emit,
		expected: t.revision,
	}
	it.next = it.c.first()
	return it
}

// HasNext reports whether Next has another element.
func (it *Iterator[K, V, T]) HasNext() bool {
	return it.next != nil
}

// Next returns the next element in ascending order.
func (it *Iterator[K, V, T]) Next() (elem T, err error) {
	n, err := it.nextNode()
	if err != nil {
		return elem, err
	}
	return it.emit(n), nil
}

// nextNode advances the cursor and returns the current node.
func (it *Iterator[K, V, T]) nextNode() (*node[K, V], error) {
	n := it.next
	if n == nil {
		return nil, ErrNoSuchElement
	}
	if it.t.revision != it.expected {
		return nil, errors.Wrapf(ErrConcurrentModification, "revision %d, iterator expects %d", it.t.revision, it.expected)
	}

	it.next = it.c.next(n)
	it.lastReturned = n
	return n, nil
}

// Remove deletes the element last returned by Next from the trie.
// The iterator stays valid, it adopts the new revision of the trie.
func (it *Iterator[K, V, T]) Remove() error {
	if it.lastReturned == nil {
		return ErrIllegalState
	}
	if it.t.revision != it.expected {
		return errors.Wrapf(ErrConcurrentModification, "revision %d, iterator expects %d", it.t.revision, it.expected)
	}

	it.t.deleteNode(it.lastReturned)
	it.expected = it.t.revision
	it.lastReturned = nil
	return nil
}

// seq adapts a fresh iterator to a range-over-func sequence.
// A modification of the trie during the range panics
// with ErrConcurrentModification.
func seq[K comparable, V any, T any](mk func() *Iterator[K, V, T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := mk()
		for it.HasNext() {
			elem, err := it.Next()
			if err != nil {
				panic(err)
			}
			if !yield(elem) {
				return
			}
		}
	}
}

// seq2 is like seq, but yields key and value.
func seq2[K comparable, V any](mk func() *Iterator[K, V, *node[K, V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := mk()
		for it.HasNext() {
			n, err := it.Next()
			if err != nil {
				panic(err)
			}
			if !yield(it.t.resolveKey(n), n.value) {
				return
			}
		}
	}
}

// emitter functions for the iterator flavors

func (t *Trie[K, V]) emitKey(n *node[K, V]) K {
	return t.resolveKey(n)
}

func (t *Trie[K, V]) emitValue(n *node[K, V]) V {
	return n.value
}

func (t *Trie[K, V]) emitEntry(n *node[K, V]) Entry[K, V] {
	return Entry[K, V]{t: t, n: n}
}

func (t *Trie[K, V]) emitNode(n *node[K, V]) *node[K, V] {
	return n
}

// Entry is a key/value pair, backed by the trie.
// The key is resolved lazily on first use.
type Entry[K comparable, V any] struct {
	t *Trie[K, V]
	n *node[K, V]
}

// Key returns the key of the entry.
func (e Entry[K, V]) Key() K {
	return e.t.resolveKey(e.n)
}

// Value returns the current value of the entry.
func (e Entry[K, V]) Value() V {
	return e.n.value
}

// SetValue writes val through to the trie and returns the old value.
// It is a value replacement only, the revision is not changed.
func (e Entry[K, V]) SetValue(val V) (old V, err error) {
	if value.IsNil(val) {
		return old, errors.Wrap(ErrInvalidArgument, "nil value")
	}
	if !e.n.hasValue {
		return old, errors.Wrap(ErrIllegalState, "entry was removed")
	}
	old, _ = e.n.setValue(val)
	return old, nil
}

// String returns "key=value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v=%v", e.Key(), e.Value())
}

// Iterator returns an iterator over all entries in ascending order.
func (t *Trie[K, V]) Iterator() *Iterator[K, V, Entry[K, V]] {
	return newIterator(t, bounds[K]{}, t.emitEntry)
}

// All returns an iterator over all key/value pairs in ascending order,
// may be used in a for/range loop.
//
// The trie must not be modified during the range, otherwise All panics
// with ErrConcurrentModification.
func (t *Trie[K, V]) All() iter.Seq2[K, V] {
	return seq2(func() *Iterator[K, V, *node[K, V]] {
		return newIterator(t, bounds[K]{}, t.emitNode)
	})
}

// Keys returns an iterator over all keys in ascending order.
func (t *Trie[K, V]) Keys() iter.Seq[K] {
	return seq(func() *Iterator[K, V, K] {
		return newIterator(t, bounds[K]{}, t.emitKey)
	})
}

// Backward returns an iterator over all key/value pairs in descending order.
//
// The trie must not be modified during the range, otherwise Backward panics
// with ErrConcurrentModification.
func (t *Trie[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		expected := t.revision
		for n := t.lastNode(); n != nil; {
			if !yield(t.resolveKey(n), n.value) {
				return
			}
			if t.revision != expected {
				panic(errors.Wrapf(ErrConcurrentModification, "revision %d, range expects %d", t.revision, expected))
			}
			n = t.predecessor(n, nil)
		}
	}
}
