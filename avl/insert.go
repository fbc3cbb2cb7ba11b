// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
// returns true if a node was added, false if an existing key had its
// value overwritten
func (tree *Tree) Insert(key Item, value interface{}) bool {
	added := false
	tree.root, added = insert(key, value, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert
// returns the possibly rotated root of the sub-tree
func insert(key Item, value interface{}, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key, value), true
	}

	added := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, added = insert(key, value, p.left)
		p.left.up = p
	case c < 0: // p.key < key
		p.right, added = insert(key, value, p.right)
		p.right.up = p
	default:
		p.value = value
	}
	if !added {
		return p, false // shape unchanged
	}
	return rebalance(p), true
}
