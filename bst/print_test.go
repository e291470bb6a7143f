// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
)

func TestPrintEmpty(t *testing.T) {
	buffer := &bytes.Buffer{}
	depth := bst.New(nil).Print(buffer)
	assert.Equal(t, 0, depth)
	assert.Equal(t, "", buffer.String())
}

func TestPrintSmall(t *testing.T) {
	buffer := &bytes.Buffer{}
	depth := bst.New([]int64{3, 1, 2}).Print(buffer)

	expected := "" +
		"│   ┌── 3\n" +
		"└── 2\n" +
		"    └── 1\n"
	assert.Equal(t, 2, depth)
	assert.Equal(t, expected, buffer.String())
}

func TestPrintDeeper(t *testing.T) {
	buffer := &bytes.Buffer{}
	depth := bst.New([]int64{1, 2, 3, 4, 5, 6, 7}).Print(buffer)

	expected := "" +
		"│       ┌── 7\n" +
		"│   ┌── 6\n" +
		"│   │   └── 5\n" +
		"└── 4\n" +
		"    │   ┌── 3\n" +
		"    └── 2\n" +
		"        └── 1\n"
	assert.Equal(t, 3, depth)
	assert.Equal(t, expected, buffer.String())
}
