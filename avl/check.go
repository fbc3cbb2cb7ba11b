// Copyright (c) 2014-2016 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		fmt.Printf("fail at node: %v   actual: %v  expected: %v\n", p.key, keyOrNil(p.up), keyOrNil(up))
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckHeights - check cached heights and the AVL balance condition
func (tree *Tree) CheckHeights() bool {
	_, ok := checkHeights(tree.root)
	return ok
}

// internal: returns actual height
func checkHeights(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, ok := checkHeights(p.left)
	if !ok {
		return 0, false
	}
	hr, ok := checkHeights(p.right)
	if !ok {
		return 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		fmt.Printf("fail at node: %v   height: %d  expected: %d\n", p.key, p.height, h)
		return 0, false
	}
	if hl-hr > 1 || hr-hl > 1 {
		fmt.Printf("fail at node: %v   unbalanced: left: %d  right: %d\n", p.key, hl, hr)
		return 0, false
	}
	return h, true
}

// CheckCounts - check the sub-tree node counts and the tree total
func (tree *Tree) CheckCounts() bool {
	n, ok := checkCounts(tree.root)
	if ok && n != tree.count {
		fmt.Printf("fail: tree count: %d  expected: %d\n", tree.count, n)
		return false
	}
	return ok
}

// internal: returns actual number of nodes
func checkCounts(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	nl, ok := checkCounts(p.left)
	if !ok {
		return 0, false
	}
	nr, ok := checkCounts(p.right)
	if !ok {
		return 0, false
	}
	if nl != p.leftNodes || nr != p.rightNodes {
		fmt.Printf("fail at node: %v   counts: [%d,%d]  expected: [%d,%d]\n", p.key, p.leftNodes, p.rightNodes, nl, nr)
		return 0, false
	}
	return 1 + nl + nr, true
}

// CheckOrder - check that in-order keys are strictly increasing
func (tree *Tree) CheckOrder() bool {
	ok := true
	var previous *Node
	inorder(tree.root, VisitorFunc(func(p *Node) {
		if ok && nil != previous && previous.key.Compare(p.key) >= 0 {
			fmt.Printf("fail at node: %v   follows: %v\n", p.key, previous.key)
			ok = false
		}
		previous = p
	}))
	return ok
}

func keyOrNil(p *Node) interface{} {
	if nil == p {
		return nil
	}
	return p.key
}
