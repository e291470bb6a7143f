// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package demo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bstree/bst"
)

//go:generate mockgen -destination=mocks/mock_display.go -package=mocks github.com/bitmark-inc/bstree/demo Display

// Display - receives each result of a demonstration run
type Display interface {
	Tree(tree *bst.Tree)
	Balanced(balanced bool)
	Order(name string, keys []int64)
}

// Console - a Display writing plain text
type Console struct {
	w io.Writer
}

// NewConsole - create a text display on a writer
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Tree - draw the tree, larger keys towards the top
func (c *Console) Tree(tree *bst.Tree) {
	if tree.IsEmpty() {
		fmt.Fprintf(c.w, "(empty)\n")
	} else {
		tree.Print(c.w)
	}
	fmt.Fprintf(c.w, "\n")
}

// Balanced - report the balance check
func (c *Console) Balanced(balanced bool) {
	fmt.Fprintf(c.w, "balanced: %t\n", balanced)
}

// Order - list the keys of one traversal
func (c *Console) Order(name string, keys []int64) {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = strconv.FormatInt(k, 10)
	}
	fmt.Fprintf(c.w, "%-24s %s\n", name+":", strings.Join(s, " "))
}
