// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

func runTraverse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	order := c.String("order")

	var traverse func(bst.Visitor) error
	switch order {
	case "pre", "pre-order":
		traverse = m.tree.PreOrderForEach
	case "in", "in-order":
		traverse = m.tree.InOrderForEach
	case "post", "post-order":
		traverse = m.tree.PostOrderForEach
	case "level", "level-order":
		traverse = m.tree.LevelOrderForEach
	case "level-recursive":
		traverse = m.tree.LevelOrderForEachRecursive
	default:
		return fault.ErrInvalidOrder
	}

	keys := make([]int64, 0, m.tree.Count())
	err := traverse(func(node *bst.Node) {
		keys = append(keys, node.Key())
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Order string  `json:"order"`
		Keys  []int64 `json:"keys"`
	}{
		Order: order,
		Keys:  keys,
	})
}
