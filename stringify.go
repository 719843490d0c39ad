// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gaissmai/bintrie/internal/value"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Trie.Fprint].
func (t *Trie[K, V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the ordered keys
// as string, just a wrapper for [Trie.Fprint].
// If Fprint returns an error, String panics.
func (t *Trie[K, V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the ordered keys
// with default formatted payload V to w. If w is nil, Fprint panics.
//
// The order from top to bottom is the pre-order of the trie and the
// subtree structure is determined by the prefix relation of the keys.
// Zero sized payloads, e.g. struct{}, are not printed.
//
//	▼
//	├─ 0 (V)
//	│  ├─ 00 (V)
//	│  └─ 0110 (V)
//	└─ 1 (V)
//	   └─ 11 (V)
//	      └─ 110 (V)
func (t *Trie[K, V]) Fprint(w io.Writer) error {
	if t.IsEmpty() {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return t.fprintRec(w, t.root, "", value.IsZST[V]())
}

// fprintRec, the output is a hierarchical key tree below n.
func (t *Trie[K, V]) fprintRec(w io.Writer, n *node[K, V], pad string, noValue bool) error {
	kids := directKids(n, nil)

	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	for i, kid := range kids {
		// ... treat last kid special
		if i == len(kids)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		var err error
		if noValue {
			_, err = fmt.Fprintf(w, "%s%v\n", pad+glyphe, t.resolveKey(kid))
		} else {
			_, err = fmt.Fprintf(w, "%s%v (%v)\n", pad+glyphe, t.resolveKey(kid), kid.value)
		}
		if err != nil {
			return err
		}

		// rec-descent with this kid as new parent
		if err := t.fprintRec(w, kid, pad+spacer, noValue); err != nil {
			return err
		}
	}

	return nil
}

// directKids appends the nearest descendants of n with a value to kids,
// in pre-order. Valueless intermediate nodes are passed through.
func directKids[K comparable, V any](n *node[K, V], kids []*node[K, V]) []*node[K, V] {
	for _, c := range [2]*node[K, V]{n.left, n.right} {
		if c == nil {
			continue
		}
		if c.hasValue {
			kids = append(kids, c)
			continue
		}
		kids = directKids(c, kids)
	}
	return kids
}
