// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// returned by balancedHeight once any sub-tree is out of balance
const unbalanced = -1

// IsBalanced - true if at every node the heights of the left and
// right sub-trees differ by at most one
func (tree *Tree) IsBalanced() bool {
	return unbalanced != balancedHeight(tree.root)
}

// internal: height counted in nodes (nil is 0) or unbalanced
func balancedHeight(p *Node) int {
	if nil == p {
		return 0
	}
	lh := balancedHeight(p.left)
	if unbalanced == lh {
		return unbalanced
	}
	rh := balancedHeight(p.right)
	if unbalanced == rh {
		return unbalanced
	}
	if lh-rh > 1 || rh-lh > 1 {
		return unbalanced
	}
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// CheckOrder - check the ordering invariant and the node count for
// consistency
func (tree *Tree) CheckOrder() bool {
	n, ok := checkOrder(tree.root, nil, nil)
	return ok && n == tree.count
}

// internal: consistency checker, every key must lie strictly between
// the bounds set by its ancestors
func checkOrder(p *Node, low *int64, high *int64) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil != low && p.key <= *low {
		return 0, false
	}
	if nil != high && p.key >= *high {
		return 0, false
	}
	ln, ok := checkOrder(p.left, low, &p.key)
	if !ok {
		return 0, false
	}
	rn, ok := checkOrder(p.right, &p.key, high)
	if !ok {
		return 0, false
	}
	return 1 + ln + rn, true
}
