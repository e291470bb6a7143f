// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runBalanced(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return printJson(m.w, struct {
		Balanced bool `json:"balanced"`
	}{
		Balanced: m.tree.IsBalanced(),
	})
}

func runRebalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	before := getTreeInfo(m.tree)
	m.tree.Rebalance()
	after := getTreeInfo(m.tree)

	if m.verbose {
		m.tree.Print(m.e)
	}
	return printJson(m.w, struct {
		Before treeInfo `json:"before"`
		After  treeInfo `json:"after"`
	}{
		Before: before,
		After:  after,
	})
}
