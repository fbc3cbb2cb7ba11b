// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
// returns the value that was stored with the key and true, or nil
// and false if the key was not in the tree
func (tree *Tree) Delete(key Item) (interface{}, bool) {
	value := interface{}(nil)
	removed := false
	tree.root, value, removed = remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return value, removed
}

// internal delete routine
// returns the possibly rotated root of the sub-tree
func remove(key Item, p *Node) (*Node, interface{}, bool) {
	if nil == p { // key not in tree
		return nil, nil, false
	}

	value := interface{}(nil)
	removed := false
	switch c := p.key.Compare(key); {
	case c > 0: // p.key > key
		p.left, value, removed = remove(key, p.left)
		if nil != p.left {
			p.left.up = p
		}
	case c < 0: // p.key < key
		p.right, value, removed = remove(key, p.right)
		if nil != p.right {
			p.right.up = p
		}
	default: // found: delete p
		value = p.value // preserve the value part
		removed = true

		if nil == p.left || nil == p.right {
			q := p.left
			if nil == q {
				q = p.right
			}
			if nil != q {
				q.up = p.up
			}
			freeNode(p) // return deleted node to pool
			return q, value, removed
		}

		// two children: take over the successor's item, then
		// remove the successor from the right sub-tree
		s := p.right.first()
		p.key = s.key
		p.value = s.value
		p.right, _, _ = remove(s.key, p.right)
		if nil != p.right {
			p.right.up = p
		}
	}
	if !removed {
		return p, nil, false
	}
	return rebalance(p), value, removed
}
