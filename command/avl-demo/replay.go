// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

const replayLoggerPrefix = "replay"

// replay the configured operations against a fresh tree, writing a
// preorder snapshot to out after each insert and delete
func replay(log *logger.L, configuration *Configuration, out io.Writer) error {

	tree := avl.New()
	defer tree.Release()

	present := make(map[int]struct{})

	fmt.Fprintf(out, "INSERTING...\n")
	for _, k := range configuration.Insert {
		added := tree.Insert(avl.IntKey(k), nil)
		present[k] = struct{}{}
		log.Debugf("insert: %d  added: %v  height: %d", k, added, tree.Height())
		fmt.Fprintf(out, "INSERT(%d) => %s\n", k, preorder(tree))
		if err := verify(log, tree); nil != err {
			return err
		}
	}
	fmt.Fprintf(out, "INSERT DONE.\n")

	fmt.Fprintf(out, "SEARCHING...\n")
	for _, k := range configuration.Search {
		node, index := tree.Search(avl.IntKey(k))
		_, expected := present[k]
		if expected != (nil != node) {
			log.Errorf("search: %d  found: %v  expected: %v", k, nil != node, expected)
			return fault.ErrUnexpectedSearchResult
		}
		if nil == node {
			fmt.Fprintf(out, "Search(%d) => not found\n", k)
			continue
		}
		fmt.Fprintf(out, "Search(%d) => %v at: %d\n", k, node.Key(), index)
	}
	fmt.Fprintf(out, "SEARCH DONE.\n")

	fmt.Fprintf(out, "DELETING...\n")
	for _, k := range configuration.Delete {
		_, removed := tree.Delete(avl.IntKey(k))
		delete(present, k)
		log.Debugf("delete: %d  removed: %v  height: %d", k, removed, tree.Height())
		fmt.Fprintf(out, "DELETE(%d) => %s\n", k, preorder(tree))
		if err := verify(log, tree); nil != err {
			return err
		}
	}
	fmt.Fprintf(out, "DELETE DONE.\n")

	fmt.Fprintf(out, "%s\n", preorder(tree))
	if configuration.PrintTree {
		tree.Fprint(out, false)
	}

	log.Infof("remaining: %d  height: %d", tree.Count(), tree.Height())
	return nil
}

// space separated keys in preorder
func preorder(tree *avl.Tree) string {
	s := make([]string, 0, tree.Count())
	tree.Preorder(avl.VisitorFunc(func(p *avl.Node) {
		s = append(s, p.Key().(avl.IntKey).String())
	}))
	return strings.Join(s, " ")
}

// run all the consistency checks
func verify(log *logger.L, tree *avl.Tree) error {
	if tree.CheckUp() && tree.CheckHeights() && tree.CheckCounts() && tree.CheckOrder() {
		return nil
	}
	log.Criticalf("inconsistent tree: %s", preorder(tree))
	return fault.ErrTreeInconsistent
}
