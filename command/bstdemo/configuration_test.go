// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
)

func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = "." }`)
	defer cleanup()

	dir := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.NoError(t, err, "configuration")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory), "data directory")
	assert.Equal(t, defaultSize, c.Size)
	assert.Equal(t, int64(defaultMaximum), c.Maximum)
	assert.Empty(t, c.Keys)
	assert.Equal(t, defaultUnbalance, c.Unbalance)
	assert.Equal(t, defaultLogFile, c.Logging.File)
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory)

	info, err := os.Stat(c.Logging.Directory)
	require.NoError(t, err, "log directory created")
	assert.True(t, info.IsDir())
}

func TestGetConfigurationValues(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.keys = { 1, 7, 4, 23 }
M.unbalance = { 200 }
M.logging = {
    directory = "logs",
    file = "demo.log",
    levels = { main = "debug" },
}
return M
`)
	defer cleanup()

	c, err := getConfiguration(fileName)
	require.NoError(t, err, "configuration")

	assert.Equal(t, []int64{1, 7, 4, 23}, c.Keys)
	assert.Equal(t, []int64{200}, c.Unbalance, "default not merged")
	assert.Equal(t, "demo.log", c.Logging.File)
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "logs"), c.Logging.Directory)
	assert.Equal(t, "debug", c.Logging.Levels["main"])

	// the shared default must be unchanged
	assert.Equal(t, []int64{101, 102, 103, 104, 105}, defaultUnbalance)
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		content string
		err     error
	}{
		{`return { data_directory = ".", size = -1 }`, fault.ErrInvalidCount},
		{`return { data_directory = ".", maximum = 0 }`, fault.ErrInvalidMaximum},
		{`return { data_directory = "" }`, nil},
		{`return { data_directory = "/no/such/directory" }`, nil},
		{`return { data_directory = ".", logging = { file = "x/y.log" } }`, nil},
		{`return 7`, fault.ErrInvalidConfiguration},
	}

	for i, item := range items {
		fileName, cleanup := writeConfiguration(t, item.content)
		_, err := getConfiguration(fileName)
		cleanup()

		assert.Error(t, err, "%d: expected error", i)
		if nil != item.err {
			assert.Equal(t, item.err, err, "%d: error", i)
		}
	}
}

func TestGetConfigurationFixedKeysSkipRandomChecks(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = ".", size = -1, keys = { 3 } }`)
	defer cleanup()

	c, err := getConfiguration(fileName)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, c.Keys)
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := getConfiguration(filepath.Join(os.TempDir(), "bstdemo-no-such-file.conf"))
	assert.Error(t, err)
}
