// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

//go:generate mockgen -destination=mocks/visitor.go -package=mocks github.com/bitmark-inc/avltree/avl Visitor

// Visitor - receives each node of a traversal exactly once
//
// the node must not be modified and the tree must not be changed
// until the traversal returns
type Visitor interface {
	Visit(*Node)
}

// VisitorFunc - adapter to allow an ordinary function as a Visitor
type VisitorFunc func(*Node)

// Visit - calls f(p)
func (f VisitorFunc) Visit(p *Node) {
	f(p)
}

// Preorder - visit each node before its sub-trees
func (tree *Tree) Preorder(v Visitor) {
	preorder(tree.root, v)
}

// Inorder - visit left sub-tree, node, right sub-tree; i.e. ascending keys
func (tree *Tree) Inorder(v Visitor) {
	inorder(tree.root, v)
}

// Postorder - visit each node after its sub-trees
func (tree *Tree) Postorder(v Visitor) {
	postorder(tree.root, v)
}

// Keys - all keys in ascending order
func (tree *Tree) Keys() []Item {
	keys := make([]Item, 0, tree.count)
	inorder(tree.root, VisitorFunc(func(p *Node) {
		keys = append(keys, p.key)
	}))
	return keys
}

func preorder(p *Node, v Visitor) {
	if nil == p {
		return
	}
	v.Visit(p)
	preorder(p.left, v)
	preorder(p.right, v)
}

func inorder(p *Node, v Visitor) {
	if nil == p {
		return
	}
	inorder(p.left, v)
	v.Visit(p)
	inorder(p.right, v)
}

func postorder(p *Node, v Visitor) {
	if nil == p {
		return
	}
	postorder(p.left, v)
	postorder(p.right, v)
	v.Visit(p)
}
