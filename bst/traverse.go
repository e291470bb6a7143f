// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Visitor - called once for each node of a traversal
type Visitor func(node *Node)

// PreOrderForEach - visit a node, then its left and right sub-trees
func (tree *Tree) PreOrderForEach(fn Visitor) error {
	if nil == fn {
		return fault.ErrMissingCallback
	}
	preOrder(tree.root, fn)
	return nil
}

func preOrder(p *Node, fn Visitor) {
	if nil == p {
		return
	}
	fn(p)
	preOrder(p.left, fn)
	preOrder(p.right, fn)
}

// InOrderForEach - visit the left sub-tree, the node, then the right
// sub-tree, i.e. keys in ascending order
func (tree *Tree) InOrderForEach(fn Visitor) error {
	if nil == fn {
		return fault.ErrMissingCallback
	}
	inOrder(tree.root, fn)
	return nil
}

func inOrder(p *Node, fn Visitor) {
	if nil == p {
		return
	}
	inOrder(p.left, fn)
	fn(p)
	inOrder(p.right, fn)
}

// PostOrderForEach - visit the left and right sub-trees, then the node
func (tree *Tree) PostOrderForEach(fn Visitor) error {
	if nil == fn {
		return fault.ErrMissingCallback
	}
	postOrder(tree.root, fn)
	return nil
}

func postOrder(p *Node, fn Visitor) {
	if nil == p {
		return
	}
	postOrder(p.left, fn)
	postOrder(p.right, fn)
	fn(p)
}

// LevelOrderForEach - breadth first, left to right within a level,
// using a FIFO queue
func (tree *Tree) LevelOrderForEach(fn Visitor) error {
	if nil == fn {
		return fault.ErrMissingCallback
	}
	if nil == tree.root {
		return nil
	}

	queue := make([]*Node, 0, tree.count)
	queue = append(queue, tree.root)
	for head := 0; head < len(queue); head += 1 {
		p := queue[head]
		fn(p)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return nil
}

// LevelOrderForEachRecursive - same visiting order as
// LevelOrderForEach, but descends from the root once per level
func (tree *Tree) LevelOrderForEachRecursive(fn Visitor) error {
	if nil == fn {
		return fault.ErrMissingCallback
	}
	height := tree.root.Height()
	for level := 0; level <= height; level += 1 {
		visitLevel(tree.root, level, fn)
	}
	return nil
}

// internal: visit all nodes that are level edges below p
func visitLevel(p *Node, level int, fn Visitor) {
	if nil == p {
		return
	}
	if 0 == level {
		fn(p)
		return
	}
	visitLevel(p.left, level-1, fn)
	visitLevel(p.right, level-1, fn)
}
