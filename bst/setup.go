// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"sort"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create a balanced tree from an unordered list of keys
//
// duplicate keys are dropped and the input slice is not modified
func New(keys []int64) *Tree {
	sorted := uniqueSorted(keys)
	return &Tree{
		root:  build(sorted, 0, len(sorted)),
		count: len(sorted),
	}
}

// IsEmpty - true if the tree contains no nodes
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// copy, sort ascending and drop adjacent duplicates
func uniqueSorted(keys []int64) []int64 {
	if 0 == len(keys) {
		return nil
	}
	sorted := make([]int64, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	n := 1
	for i := 1; i < len(sorted); i += 1 {
		if sorted[i] != sorted[n-1] {
			sorted[n] = sorted[i]
			n += 1
		}
	}
	return sorted[:n]
}
