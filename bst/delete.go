// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Delete - removes a specific key from the tree
//
// returns false if the key was not present
func (tree *Tree) Delete(key int64) bool {
	removed := false
	tree.root, removed = remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the replacement for p
func remove(key int64, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch {
	case key < p.key:
		p.left, removed = remove(key, p.left)
	case key > p.key:
		p.right, removed = remove(key, p.right)
	default: // found: delete p
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: take over the in-order successor's key and
		// delete the successor, which has no left child
		successor := p.right.first()
		p.key = successor.key
		p.right, removed = remove(successor.key, p.right)
		if !removed {
			fault.Panicf("bst: successor: %d missing from right sub-tree", successor.key)
		}
	}
	return p, removed
}
