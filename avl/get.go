// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - the node at a zero-based in-order index, nil if out of range
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= tree.count {
		return nil
	}

	p := tree.root
	for nil != p {
		switch {
		case index < p.leftNodes:
			p = p.left
		case index > p.leftNodes:
			// skip the left sub-tree and this node
			index -= p.leftNodes + 1
			p = p.right
		default:
			return p
		}
	}
	return nil
}
