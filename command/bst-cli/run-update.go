// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type insertReply struct {
	Inserted   []int64  `json:"inserted"`
	Duplicates []int64  `json:"duplicates"`
	Tree       treeInfo `json:"tree"`
}

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := checkKeys(c)
	if nil != err {
		return err
	}

	reply := insertReply{
		Inserted:   []int64{},
		Duplicates: []int64{},
	}
	for _, key := range keys {
		if m.tree.Insert(key) {
			reply.Inserted = append(reply.Inserted, key)
		} else {
			reply.Duplicates = append(reply.Duplicates, key)
		}
	}
	reply.Tree = getTreeInfo(m.tree)

	if m.verbose {
		m.tree.Print(m.e)
	}
	return printJson(m.w, reply)
}

type deleteReply struct {
	Deleted []int64  `json:"deleted"`
	Missing []int64  `json:"missing"`
	Tree    treeInfo `json:"tree"`
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := checkKeys(c)
	if nil != err {
		return err
	}

	reply := deleteReply{
		Deleted: []int64{},
		Missing: []int64{},
	}
	for _, key := range keys {
		if m.tree.Delete(key) {
			reply.Deleted = append(reply.Deleted, key)
		} else {
			reply.Missing = append(reply.Missing, key)
		}
	}
	reply.Tree = getTreeInfo(m.tree)

	if m.verbose {
		m.tree.Print(m.e)
	}
	return printJson(m.w, reply)
}
