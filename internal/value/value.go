// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package value provides utilities for working with generic type parameters
// as keys and payload at runtime.
//
// IsNil detects the "absent" key or value: the trie never stores nil
// pointers, interfaces, maps, slices, funcs or chans.
//
// IsZST detects zero-sized types (like struct{} or [0]byte). Since
// zero-sized types carry no information in their values, they are
// omitted from dumps and prints to reduce line noise.
//
// Equal, Clone and Hash honor the optional Equaler, Cloner and Hasher
// interfaces of the payload.
//
// This is an internal package used by the bintrie implementation.
package value

import (
	"encoding"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// IsNil reports whether v is nil, for nilable kinds only.
// Non-nilable kinds like ints, strings, structs or arrays are never nil.
func IsNil[T any](v T) bool {
	// you can't compare a type parameter with nil
	a := any(v)
	if a == nil {
		return true
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsZST reports whether type V is a zero-sized type (ZST).
//
// Zero-sized types such as struct{}, [0]byte, or structs/arrays with no fields
// occupy no memory. The Go runtime optimizes allocations of ZSTs by returning
// pointers to the same memory address (typically runtime.zerobase).
//
// The helper escapeToHeap ensures both allocations reach the heap and prevents
// the compiler from proving address equality at compile time.
func IsZST[V any]() bool {
	a, b := escapeToHeap[V]()
	return a == b
}

// escapeToHeap forces two allocations of type V to escape to the heap.
//
//go:noinline
func escapeToHeap[V any]() (*V, *V) {
	return new(V), new(V)
}

// Equaler is a generic interface for types that can decide their own
// equality logic. It can be used to override the potentially expensive
// default comparison with [reflect.DeepEqual].
type Equaler[V any] interface {
	Equal(other V) bool
}

// Equal compares two values of type V for equality.
// If V implements Equaler[V], that custom equality method is used,
// avoiding the potentially expensive reflect.DeepEqual.
// Otherwise, reflect.DeepEqual is used as a fallback.
func Equal[V any](v1, v2 V) bool {
	// you can't assert directly on a type parameter
	if v1, ok := any(v1).(Equaler[V]); ok {
		return v1.Equal(v2)
	}
	// fallback
	return reflect.DeepEqual(v1, v2)
}

// Cloner is an interface that enables deep cloning of values of type V.
type Cloner[V any] interface {
	Clone() V
}

// CloneVal returns a deep clone of val by calling Clone when
// val implements Cloner[V]. If val does not implement
// Cloner[V] or the Cloner receiver is nil (val is a nil pointer),
// CloneVal returns val unchanged.
func CloneVal[V any](val V) V {
	// you can't assert directly on a type parameter
	c, ok := any(val).(Cloner[V])
	if !ok || IsNil(val) {
		return val
	}
	return c.Clone()
}

// Hasher is implemented by keys and values that know their own hash.
type Hasher interface {
	Hash() uint64
}

// Hash returns a 64-bit hash for v.
//
// Hasher implementations are used as is, all other values are hashed
// with xxhash over a canonical byte representation: the MarshalBinary
// output, the raw bytes of strings and byte slices, or the Go-syntax
// representation as last resort.
func Hash[T any](v T) uint64 {
	switch x := any(v).(type) {
	case nil:
		return 0
	case Hasher:
		return x.Hash()
	case string:
		return xxhash.Sum64String(x)
	case []byte:
		return xxhash.Sum64(x)
	case encoding.BinaryMarshaler:
		if buf, err := x.MarshalBinary(); err == nil {
			return xxhash.Sum64(buf)
		}
	}

	d := xxhash.New()
	_, _ = fmt.Fprintf(d, "%#v", v)
	return d.Sum64()
}
