// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// restore the AVL condition at p, whose sub-trees are both balanced
// and differ in height by at most two; returns the new sub-tree root
func rebalance(p *Node) *Node {
	switch bf := p.balanceFactor(); {
	case bf > 1: // left heavy
		if p.left.balanceFactor() < 0 {
			p.left = rotateLeft(p.left) // LR case
		}
		return rotateRight(p)

	case bf < -1: // right heavy
		if p.right.balanceFactor() > 0 {
			p.right = rotateRight(p.right) // RL case
		}
		return rotateLeft(p)
	}
	p.update()
	return p
}

//   P            Q
// A  Q    =>   P  C
//   B C       A B
func rotateLeft(p *Node) *Node {
	q := p.right
	if nil == q {
		fault.Panicf("avl: rotate left at: %v without right child", p.key)
	}
	p.right = q.left
	if nil != p.right {
		p.right.up = p
	}
	q.left = p
	q.up = p.up
	p.up = q

	p.update()
	q.update()
	return q
}

//    P           Q
//  Q  C   =>   A   P
// A B             B C
func rotateRight(p *Node) *Node {
	q := p.left
	if nil == q {
		fault.Panicf("avl: rotate right at: %v without left child", p.key)
	}
	p.left = q.right
	if nil != p.left {
		p.left.up = p
	}
	q.right = p
	q.up = p.up
	p.up = q

	p.update()
	q.update()
	return q
}
