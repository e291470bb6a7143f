// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package demo - walk a tree through build, skew and rebalance while
// showing its shape, balance and traversal orders
package demo
