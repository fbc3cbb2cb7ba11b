// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/avl/mocks"
)

// matches a node by its key
type keyMatcher struct {
	key avl.Item
}

func hasKey(k int) gomock.Matcher {
	return keyMatcher{key: avl.IntKey(k)}
}

func (m keyMatcher) Matches(x interface{}) bool {
	p, ok := x.(*avl.Node)
	return ok && nil != p && 0 == p.Key().Compare(m.key)
}

func (m keyMatcher) String() string {
	return fmt.Sprintf("is node with key %v", m.key)
}

func expectVisits(v *mocks.MockVisitor, keys ...int) {
	calls := make([]*gomock.Call, 0, len(keys))
	for _, k := range keys {
		calls = append(calls, v.EXPECT().Visit(hasKey(k)).Times(1))
	}
	gomock.InOrder(calls...)
}

//          9
//      5       11
//    3   7   10  12
//   2 4 6 8        13
func TestPreorder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := buildTree(insertSequence...)
	v := mocks.NewMockVisitor(ctl)
	expectVisits(v, 9, 5, 3, 2, 4, 7, 6, 8, 11, 10, 12, 13)

	tree.Preorder(v)
}

func TestInorder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := buildTree(insertSequence...)
	v := mocks.NewMockVisitor(ctl)
	expectVisits(v, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13)

	tree.Inorder(v)
}

func TestPostorder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := buildTree(insertSequence...)
	v := mocks.NewMockVisitor(ctl)
	expectVisits(v, 2, 4, 3, 6, 8, 7, 5, 10, 13, 12, 11, 9)

	tree.Postorder(v)
}

func TestTraverseEmpty(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tree := avl.New()
	v := mocks.NewMockVisitor(ctl)
	v.EXPECT().Visit(gomock.Any()).Times(0)

	tree.Preorder(v)
	tree.Inorder(v)
	tree.Postorder(v)
}

func TestTraverseVisitsEachNodeOnce(t *testing.T) {
	tree := buildTree(insertSequence...)

	for name, traverse := range map[string]func(avl.Visitor){
		"preorder":  tree.Preorder,
		"inorder":   tree.Inorder,
		"postorder": tree.Postorder,
	} {
		seen := make(map[*avl.Node]int)
		traverse(avl.VisitorFunc(func(p *avl.Node) {
			seen[p] += 1
		}))
		assert.Equal(t, tree.Count(), len(seen), "%s: wrong number of nodes", name)
		for p, n := range seen {
			assert.Equal(t, 1, n, "%s: node: %v visited %d times", name, p.Key(), n)
		}
	}
}
