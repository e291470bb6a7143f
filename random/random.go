// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - generate lists of keys for building trees
package random

import (
	"crypto/rand"
	"math/big"

	"github.com/bitmark-inc/bstree/fault"
)

// Keys - size random keys in the range [0, maximum)
//
// the result may contain duplicates
func Keys(size int, maximum int64) ([]int64, error) {
	if size < 0 {
		return nil, fault.ErrInvalidCount
	}
	if maximum <= 0 {
		return nil, fault.ErrInvalidMaximum
	}

	limit := big.NewInt(maximum)
	keys := make([]int64, size)
	for i := range keys {
		n, err := rand.Int(rand.Reader, limit)
		if nil != err {
			return nil, err
		}
		keys[i] = n.Int64()
	}
	return keys, nil
}
