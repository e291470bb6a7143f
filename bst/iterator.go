// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []int64 {
	keys := make([]int64, 0, tree.count)
	inOrder(tree.root, func(p *Node) {
		keys = append(keys, p.key)
	})
	return keys
}
