// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/configuration"
	"github.com/bitmark-inc/bstree/fault"
)

type levels struct {
	Main string `gluamapper:"main"`
}

type testConfiguration struct {
	Name    string  `gluamapper:"name"`
	Size    int     `gluamapper:"size"`
	Keys    []int64 `gluamapper:"keys"`
	Levels  levels  `gluamapper:"levels"`
	Unknown string  `gluamapper:"not_in_file"`
}

const testConfig = `
local M = {}

M.name = "config:" .. arg[0]:match("[^/]*$")
M.size = 4 * 5
M.keys = { 1, 7, 4, 23 }
M.levels = {
    main = "debug",
}

return M
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err, "temp dir")

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err, "write")

	return fileName, func() {
		os.RemoveAll(dir)
	}
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, testConfig)
	defer cleanup()

	config := &testConfiguration{
		Unknown: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, config)
	require.NoError(t, err, "parse")

	assert.Equal(t, "config:test.conf", config.Name)
	assert.Equal(t, 20, config.Size)
	assert.Equal(t, []int64{1, 7, 4, 23}, config.Keys)
	assert.Equal(t, "debug", config.Levels.Main)
	assert.Equal(t, "default", config.Unknown, "default preserved")
}

func TestParseConfigurationFileInvalidTarget(t *testing.T) {
	fileName, cleanup := writeFile(t, testConfig)
	defer cleanup()

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	n := 5
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	var nilConfig *testConfiguration
	err = configuration.ParseConfigurationFile(fileName, nilConfig)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "nil pointer")
}

func TestParseConfigurationFileNotTable(t *testing.T) {
	fileName, cleanup := writeFile(t, "return 42\n")
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{})
	assert.Equal(t, fault.ErrInvalidConfiguration, err)
}

func TestParseConfigurationFileSyntaxError(t *testing.T) {
	fileName, cleanup := writeFile(t, "return {\n")
	defer cleanup()

	err := configuration.ParseConfigurationFile(fileName, &testConfiguration{})
	assert.Error(t, err)
}

func TestParseConfigurationFileMissing(t *testing.T) {
	err := configuration.ParseConfigurationFile("/no/such/file.conf", &testConfiguration{})
	assert.Error(t, err)
}
