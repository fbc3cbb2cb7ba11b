// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Release - return all nodes to the pool and leave an empty tree
func (tree *Tree) Release() {
	release(tree.root)
	tree.root = nil
	tree.count = 0
}

// children are reclaimed before their parent
func release(p *Node) {
	if nil == p {
		return
	}
	release(p.left)
	release(p.right)
	freeNode(p)
}
