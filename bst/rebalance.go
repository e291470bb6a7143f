// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Rebalance - discard the current shape and rebuild a minimum height
// tree from the same keys
func (tree *Tree) Rebalance() {
	keys := tree.Keys()
	tree.root = build(keys, 0, len(keys))
	tree.count = len(keys)
}
