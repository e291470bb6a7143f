// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package demo

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

// names of the traversals in the order they are shown
const (
	LevelOrder          = "level order"
	LevelOrderRecursive = "level order (recursive)"
	PreOrder            = "pre-order"
	PostOrder           = "post-order"
	InOrder             = "in-order"
)

// Run - show the tree, skew it by inserting the unbalance keys, then
// rebalance and show it again
//
// returns fault.ErrNotBalanced if a freshly built or rebalanced tree
// fails the balance check
func Run(tree *bst.Tree, unbalance []int64, display Display, log *logger.L) error {

	log.Infof("start: %d keys", tree.Count())

	display.Tree(tree)
	balanced := tree.IsBalanced()
	display.Balanced(balanced)
	if !balanced {
		log.Errorf("new tree is not balanced: %v", tree.Keys())
		return fault.ErrNotBalanced
	}
	if err := showOrders(tree, display); nil != err {
		return err
	}

	added := 0
	for _, key := range unbalance {
		if tree.Insert(key) {
			added += 1
		}
	}
	log.Infof("inserted: %d of %d unbalancing keys", added, len(unbalance))

	display.Tree(tree)
	balanced = tree.IsBalanced()
	display.Balanced(balanced)
	log.Infof("balanced after insert: %t", balanced)

	tree.Rebalance()
	log.Info("rebalanced")

	display.Tree(tree)
	balanced = tree.IsBalanced()
	display.Balanced(balanced)
	if !balanced {
		log.Errorf("rebalanced tree is not balanced: %v", tree.Keys())
		return fault.ErrNotBalanced
	}
	if err := showOrders(tree, display); nil != err {
		return err
	}

	log.Infof("finish: %d keys", tree.Count())
	return nil
}

// show every traversal order
func showOrders(tree *bst.Tree, display Display) error {
	traversals := []struct {
		name     string
		traverse func(bst.Visitor) error
	}{
		{LevelOrder, tree.LevelOrderForEach},
		{LevelOrderRecursive, tree.LevelOrderForEachRecursive},
		{PreOrder, tree.PreOrderForEach},
		{PostOrder, tree.PostOrderForEach},
		{InOrder, tree.InOrderForEach},
	}

	for _, t := range traversals {
		keys := make([]int64, 0, tree.Count())
		err := t.traverse(func(node *bst.Node) {
			keys = append(keys, node.Key())
		})
		if nil != err {
			return err
		}
		display.Order(t.name, keys)
	}
	return nil
}
