// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node) Next() *Node {
	if tree.right != nil {
		return tree.right.first()
	}
	// climb while arriving from a right child
	u := tree.up
	for u != nil && u.right == tree {
		tree = u
		u = u.up
	}
	return u
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node) Prev() *Node {
	if tree.left != nil {
		return tree.left.last()
	}
	// climb while arriving from a left child
	u := tree.up
	for u != nil && u.left == tree {
		tree = u
		u = u.up
	}
	return u
}

// Minimum - lowest key in the tree, false if empty
func (tree *Tree) Minimum() (Item, bool) {
	return keyOf(tree.First())
}

// Maximum - highest key in the tree, false if empty
func (tree *Tree) Maximum() (Item, bool) {
	return keyOf(tree.Last())
}

// Successor - the key that follows a key present in the tree
// false if the key is absent or is the maximum
func (tree *Tree) Successor(key Item) (Item, bool) {
	p, _ := tree.Search(key)
	if nil == p {
		return nil, false
	}
	return keyOf(p.Next())
}

// Predecessor - the key that precedes a key present in the tree
// false if the key is absent or is the minimum
func (tree *Tree) Predecessor(key Item) (Item, bool) {
	p, _ := tree.Search(key)
	if nil == p {
		return nil, false
	}
	return keyOf(p.Prev())
}

func keyOf(p *Node) (Item, bool) {
	if nil == p {
		return nil, false
	}
	return p.key, true
}
