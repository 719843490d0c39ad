// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	// ErrInvalidArgument is returned for absent keys or values, for keys
	// with a bit length <= 0 and for keys outside the range of a [PrefixMap].
	ErrInvalidArgument = errors.New("bintrie: invalid argument")

	// ErrConcurrentModification is returned by iterators when the trie was
	// modified by anything else than the iterator itself since its creation
	// or its last Remove.
	ErrConcurrentModification = errors.New("bintrie: concurrent modification")

	// ErrNoSuchElement is returned by Iterator.Next when the iteration is exhausted.
	ErrNoSuchElement = errors.New("bintrie: no such element")

	// ErrIllegalState is returned by Iterator.Remove without a preceding Next.
	ErrIllegalState = errors.New("bintrie: iterator has no element to remove")

	// errInternal signals a broken invariant, a bug in a codec or in the trie.
	errInternal = errors.New("bintrie: internal inconsistency")
)

// invalidKeyLen returns a wrapped ErrInvalidArgument for keys with length <= 0.
func invalidKeyLen(key any, n int) error {
	return errors.Wrapf(ErrInvalidArgument, "key of length %d <= 0: %v", n, key)
}

// mustNotHappen logs and panics, the invariant is broken beyond repair.
func (t *Trie[K, V]) mustNotHappen(format string, args ...any) {
	err := errors.Wrapf(errInternal, format, args...)
	t.log.Error("broken trie invariant", zap.Error(err))
	panic(err)
}
