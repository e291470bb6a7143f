// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bst-cli - build a tree from a list of keys or random keys and apply
// a single operation to it
//
// examples:
//   bst-cli --keys=1,7,4,23,8,9 print
//   bst-cli --random=20 --maximum=100 traverse --order=level
//   bst-cli -k 5,3,8 insert 9 10 11
package main
