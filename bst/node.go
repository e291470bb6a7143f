// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Node - a single key with its two sub-trees
type Node struct {
	left  *Node // sub-tree of smaller keys
	right *Node // sub-tree of larger keys
	key   int64
}

// Key - read the key from a node
func (p *Node) Key() int64 {
	return p.key
}

// Left - the sub-tree holding keys less than this node's key
func (p *Node) Left() *Node {
	return p.left
}

// Right - the sub-tree holding keys greater than this node's key
func (p *Node) Right() *Node {
	return p.right
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// Height - number of edges on the longest path down to a leaf
//
// a leaf has height 0 and a nil node has height -1
func (p *Node) Height() int {
	if nil == p {
		return -1
	}
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
