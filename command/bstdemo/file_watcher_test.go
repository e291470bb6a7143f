// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	watchTimeout = 5 * time.Second
)

func TestFileWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher("/no/such/file.conf", logger.New(testLogger), newWatcherChannel())
	assert.Error(t, err)
}

func TestFileWatcherChangeAndRemove(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, "return {}\n")
	defer cleanup()

	channels := newWatcherChannel()
	watcher, err := newFileWatcher(fileName, logger.New(testLogger), channels)
	require.NoError(t, err, "new watcher")
	require.NoError(t, watcher.Start(), "start")
	defer watcher.Stop()

	err = ioutil.WriteFile(fileName, []byte("return { size = 3 }\n"), 0600)
	require.NoError(t, err, "rewrite")

	select {
	case <-channels.change:
	case <-time.After(watchTimeout):
		t.Fatal("no change event")
	}

	require.NoError(t, os.Remove(fileName), "remove")

	// skip any trailing change events
	for {
		select {
		case <-channels.change:
			continue
		case <-channels.remove:
			return
		case <-time.After(watchTimeout):
			t.Fatal("no remove event")
		}
	}
}
