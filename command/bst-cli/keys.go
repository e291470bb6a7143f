// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/random"
)

// keys from a comma separated list or count random keys, but not both
func initialKeys(list string, count int, maximum int64) ([]int64, error) {
	list = strings.TrimSpace(list)
	if "" != list && 0 != count {
		return nil, fmt.Errorf("only one of keys or random can be given")
	}
	if 0 != count {
		return random.Keys(count, maximum)
	}
	if "" == list {
		return nil, nil
	}
	return parseKeys(strings.Split(list, ","))
}

func parseKeys(items []string) ([]int64, error) {
	keys := make([]int64, 0, len(items))
	for _, s := range items {
		s = strings.TrimSpace(s)
		if "" == s {
			continue
		}
		k, err := strconv.ParseInt(s, 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKey
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func parseKey(s string) (int64, error) {
	k, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return k, nil
}
