// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		if nil != p.left {
			nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
		}
		if nil != p.right {
			nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Height - cached height of the sub-tree rooted at a node, a leaf is
// zero and a nil node is -1
func (p *Node) Height() int {
	if nil == p {
		return -1
	}
	return p.height
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// number of nodes in a sub-tree
func (p *Node) size() int {
	if nil == p {
		return 0
	}
	return 1 + p.leftNodes + p.rightNodes
}

// refresh the cached height and sizes from the children
func (p *Node) update() {
	hl := p.left.Height()
	hr := p.right.Height()
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.leftNodes = p.left.size()
	p.rightNodes = p.right.size()
}

// height(left) - height(right)
func (p *Node) balanceFactor() int {
	return p.left.Height() - p.right.Height()
}
