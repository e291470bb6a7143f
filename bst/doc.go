// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a binary search tree over unique int64 keys that is
// built balanced and only rebalanced on request
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Construction sorts and de-duplicates the input keys and then picks
// the middle key of each range as the subtree root, so a new tree has
// the minimum possible height.  Insert and Delete do not rotate; a
// run of ascending inserts will degrade the tree towards a list
// until Rebalance is called.
//
// There are no parent pointers, all navigation is top down and
// recursive, so stack depth is bounded by the height of the tree.
package bst
