// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree with
// larger keys above smaller ones
//
// returns the number of levels printed
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, p *Node, prefix string, br branch) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "    "
		if right != br {
			t = "│   "
		}
		rd = printTree(w, p.right, prefix+t, right)
	}
	switch br {
	case right:
		fmt.Fprintf(w, "%s┌── %d\n", prefix, p.key)
	default:
		fmt.Fprintf(w, "%s└── %d\n", prefix, p.key)
	}
	if nil != p.left {
		t := "    "
		if right == br {
			t = "│   "
		}
		ld = printTree(w, p.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
