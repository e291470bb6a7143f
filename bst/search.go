// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - find the node holding a specific key, nil if not present
func (tree *Tree) Find(key int64) *Node {
	return search(key, tree.root)
}

func search(key int64, p *Node) *Node {
	if nil == p {
		return nil
	}

	switch {
	case key < p.key:
		return search(key, p.left)
	case key > p.key:
		return search(key, p.right)
	default:
		return p
	}
}

// Height - height of the node holding key
//
// the second result is false if the key is not in the tree
func (tree *Tree) Height(key int64) (int, bool) {
	p := tree.Find(key)
	if nil == p {
		return 0, false
	}
	return p.Height(), true
}

// Depth - number of edges from the root to the node holding key
//
// the second result is false if the key is not in the tree
func (tree *Tree) Depth(key int64) (int, bool) {
	depth := 0
	p := tree.root
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return depth, true
		}
		depth += 1
	}
	return 0, false
}
