// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// build a minimum height sub-tree from the sorted range keys[lo:hi]
//
// the middle key becomes the root so that both halves differ in size
// by at most one
func build(keys []int64, lo int, hi int) *Node {
	if lo >= hi {
		return nil
	}
	mid := lo + (hi-lo)/2
	return &Node{
		key:   keys[mid],
		left:  build(keys, lo, mid),
		right: build(keys, mid+1, hi),
	}
}
