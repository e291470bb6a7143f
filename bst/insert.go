// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - insert a new key into the tree
//
// returns false if the key was already present, in which case the
// tree is unchanged.  No rebalancing is done.
func (tree *Tree) Insert(key int64) bool {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
func insert(key int64, p *Node) (*Node, bool) {
	if nil == p { // insert new leaf
		return &Node{key: key}, true
	}
	added := false
	switch {
	case key < p.key:
		p.left, added = insert(key, p.left)
	case key > p.key:
		p.right, added = insert(key, p.right)
	default:
		// duplicate: leave as is
	}
	return p, added
}
