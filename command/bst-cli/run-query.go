// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

type treeInfo struct {
	Count    int     `json:"count"`
	Height   int     `json:"height"`
	Balanced bool    `json:"balanced"`
	Keys     []int64 `json:"keys"`
}

func getTreeInfo(tree *bst.Tree) treeInfo {
	return treeInfo{
		Count:    tree.Count(),
		Height:   tree.Root().Height(),
		Balanced: tree.IsBalanced(),
		Keys:     tree.Keys(),
	}
}

// the single KEY argument of a command
func checkKey(c *cli.Context) (int64, error) {
	if 1 != c.NArg() {
		return 0, fmt.Errorf("%s: exactly one key is required", c.Command.Name)
	}
	return parseKey(c.Args().First())
}

// the KEY... arguments of a command
func checkKeys(c *cli.Context) ([]int64, error) {
	if 0 == c.NArg() {
		return nil, fmt.Errorf("%s: at least one key is required", c.Command.Name)
	}
	return parseKeys(c.Args())
}

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if m.tree.IsEmpty() {
		fmt.Fprintf(m.w, "(empty)\n")
		return nil
	}
	m.tree.Print(m.w)
	return nil
}

type findReply struct {
	Key   int64  `json:"key"`
	Left  *int64 `json:"left"`
	Right *int64 `json:"right"`
	Leaf  bool   `json:"leaf"`
}

func runFind(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkKey(c)
	if nil != err {
		return err
	}

	node := m.tree.Find(key)
	if nil == node {
		return fault.ErrKeyNotFound
	}

	reply := findReply{
		Key:  node.Key(),
		Leaf: node.IsLeaf(),
	}
	if l := node.Left(); nil != l {
		k := l.Key()
		reply.Left = &k
	}
	if r := node.Right(); nil != r {
		k := r.Key()
		reply.Right = &k
	}
	return printJson(m.w, reply)
}

func runHeight(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkKey(c)
	if nil != err {
		return err
	}

	height, ok := m.tree.Height(key)
	if !ok {
		return fault.ErrKeyNotFound
	}
	return printJson(m.w, struct {
		Key    int64 `json:"key"`
		Height int   `json:"height"`
	}{
		Key:    key,
		Height: height,
	})
}

func runDepth(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkKey(c)
	if nil != err {
		return err
	}

	depth, ok := m.tree.Depth(key)
	if !ok {
		return fault.ErrKeyNotFound
	}
	return printJson(m.w, struct {
		Key   int64 `json:"key"`
		Depth int   `json:"depth"`
	}{
		Key:   key,
		Depth: depth,
	})
}
