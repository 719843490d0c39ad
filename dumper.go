// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bintrie

import (
	"fmt"
	"io"
	"strings"
)

type nodeType byte

const (
	nullNode         nodeType = iota // no value, no children, only the empty root
	fullNode                         // value and children
	leafNode                         // value, no children
	intermediateNode                 // only children, no value
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Trie[K, V]) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the trie structure and all the nodes to w.
func (t *Trie[K, V]) dump(w io.Writer) {
	if t == nil {
		return
	}

	s := t.nodeStats()
	fmt.Fprintf(w, "### size(%d), nodes(%d), revision(%d)\n", t.size, s.nodes, t.revision)
	if t.root != nil {
		t.dumpRec(w, t.root, nil)
	}
}

// dumpRec, rec-descent the trie, left before right.
func (t *Trie[K, V]) dumpRec(w io.Writer, n *node[K, V], path []byte) {
	t.dumpNode(w, n, path)

	if n.left != nil {
		t.dumpRec(w, n.left, append(path, '0'))
	}
	if n.right != nil {
		t.dumpRec(w, n.right, append(path, '1'))
	}
}

// dumpNode writes a single line for n, indented by depth.
func (t *Trie[K, V]) dumpNode(w io.Writer, n *node[K, V], path []byte) {
	indent := strings.Repeat(".", len(path))

	fmt.Fprintf(w, "%s[%s] depth: %d path: [%s]", indent, n.hasType(), len(path), path)
	if n.hasValue {
		fmt.Fprintf(w, " value: %v", n.value)
	}
	if n.hasKey {
		fmt.Fprintf(w, " key: %v", n.key)
	}
	fmt.Fprintln(w)
}

// hasType returns the nodeType.
func (n *node[K, V]) hasType() nodeType {
	switch {
	case n.hasValue && n.isLeaf():
		return leafNode
	case n.hasValue:
		return fullNode
	case n.isLeaf():
		return nullNode
	default:
		return intermediateNode
	}
}

// String implements Stringer for nodeType.
func (nt nodeType) String() string {
	switch nt {
	case nullNode:
		return "NULL"
	case fullNode:
		return "FULL"
	case leafNode:
		return "LEAF"
	case intermediateNode:
		return "IMED"
	default:
		return "unreachable"
	}
}

// stats, only used for dump, tests and benchmarks
type stats struct {
	nodes  int // all nodes below the root
	values int // nodes with a value
	leaves int // nodes without children
	imeds  int // nodes without a value
	maxDep int // longest path
}

// nodeStats walks the whole trie and counts the nodes by type.
func (t *Trie[K, V]) nodeStats() stats {
	var s stats
	if t.root != nil {
		nodeStatsRec(t.root, 0, &s)
	}
	return s
}

// nodeStatsRec, the root itself is not counted.
func nodeStatsRec[K comparable, V any](n *node[K, V], depth int, s *stats) {
	if depth > 0 {
		s.nodes++
		if n.hasValue {
			s.values++
		} else {
			s.imeds++
		}
		if n.isLeaf() {
			s.leaves++
		}
		s.maxDep = max(s.maxDep, depth)
	}

	if n.left != nil {
		nodeStatsRec(n.left, depth+1, s)
	}
	if n.right != nil {
		nodeStatsRec(n.right, depth+1, s)
	}
}
