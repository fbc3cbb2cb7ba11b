// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
)

func TestReplay(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	c := &Configuration{
		Insert: []int{3, 5, 7, 9, 4, 6, 2, 8, 10, 11, 12, 13},
		Search: []int{8, 6, 5, 3, 2, 9, 4, 1, 7},
		Delete: []int{8, 6, 5, 3, 2, 9, 4, 1, 7},
	}

	out := &bytes.Buffer{}
	err := replay(logger.New(logCategory), c, out)
	assert.Nil(t, err, "replay error")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")

	assert.Equal(t, "INSERTING...", lines[0], "wrong first line")
	assert.Contains(t, lines, "INSERT(7) => 5 3 7", "missing rotation snapshot")
	assert.Contains(t, lines, "INSERT(13) => 9 5 3 2 4 7 6 8 11 10 12 13", "missing final insert snapshot")
	assert.Contains(t, lines, "Search(8) => 8 at: 6", "missing search result")
	assert.Contains(t, lines, "Search(1) => not found", "missing absent search")
	assert.Contains(t, lines, "DELETE(1) => 10 7 12 11 13", "absent delete changed tree")
	assert.Equal(t, "12 10 11 13", lines[len(lines)-1], "wrong final tree")
}

func TestReplayDuplicateInsert(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	c := &Configuration{
		Insert: []int{2, 1, 2, 3},
		Search: []int{2},
	}

	out := &bytes.Buffer{}
	err := replay(logger.New(logCategory), c, out)
	assert.Nil(t, err, "replay error")
	assert.Contains(t, out.String(), "INSERT(2) => 2 1\n", "duplicate changed tree")
	assert.Contains(t, out.String(), "INSERT(3) => 2 1 3\n", "wrong final insert")
}

func TestPreorderEmpty(t *testing.T) {
	assert.Equal(t, "", preorder(avl.New()), "empty tree preorder")
}
