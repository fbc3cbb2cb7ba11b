// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
)

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `
return {
    data_directory = ".",
    insert = { 3, 5, 7 },
    search = { 5 },
    delete = { 3 },
    print_tree = true,
    logging = {
        file = "demo.log",
        levels = { DEFAULT = "debug" },
    },
}
`)
	defer cleanup()

	c, err := getConfiguration(fileName)
	if !assert.Nil(t, err, "configuration error") {
		return
	}

	dir, _ := filepath.Split(fileName)
	assert.Equal(t, filepath.Clean(dir), c.DataDirectory, "wrong data directory")
	assert.Equal(t, []int{3, 5, 7}, c.Insert, "wrong insert list")
	assert.Equal(t, []int{5}, c.Search, "wrong search list")
	assert.Equal(t, []int{3}, c.Delete, "wrong delete list")
	assert.True(t, c.PrintTree, "wrong print tree")
	assert.Equal(t, "demo.log", c.Logging.File, "wrong log file")
	assert.Equal(t, defaultLogCount, c.Logging.Count, "default log count lost")
	assert.Equal(t, filepath.Join(filepath.Clean(dir), defaultLogDirectory), c.Logging.Directory, "log directory not absolute")
	assert.Equal(t, "debug", c.Logging.Levels["DEFAULT"], "wrong level")
}

func TestGetConfigurationEmptyInsert(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = "." }`)
	defer cleanup()

	_, err := getConfiguration(fileName)
	assert.Equal(t, fault.ErrEmptyInsertList, err, "wrong error")
}

func TestGetConfigurationNoDataDirectory(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { insert = { 1 } }`)
	defer cleanup()

	_, err := getConfiguration(fileName)
	assert.NotNil(t, err, "missing data directory accepted")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := getConfiguration("/does/not/exist/avl-demo.conf")
	assert.True(t, fault.IsErrNotFound(err), "wrong error: %v", err)
}

func TestSampleConfiguration(t *testing.T) {
	c, err := getConfiguration("avl-demo.conf.sample")
	if !assert.Nil(t, err, "sample configuration error") {
		return
	}
	assert.Equal(t, []int{3, 5, 7, 9, 4, 6, 2, 8, 10, 11, 12, 13}, c.Insert, "wrong insert list")
	assert.Equal(t, []int{8, 6, 5, 3, 2, 9, 4, 1, 7}, c.Delete, "wrong delete list")
}
