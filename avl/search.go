// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item
// returns the node and its in-order index, or nil and -1 if not found
func (tree *Tree) Search(key Item) (*Node, int) {
	return search(key, tree.root, 0)
}

// Has - true if the key is in the tree
func (tree *Tree) Has(key Item) bool {
	node, _ := search(key, tree.root, 0)
	return nil != node
}

func search(key Item, tree *Node, index int) (*Node, int) {
	for nil != tree {
		switch c := tree.key.Compare(key); {
		case c > 0: // tree.key > key
			tree = tree.left
		case c < 0: // tree.key < key
			index += tree.leftNodes + 1
			tree = tree.right
		default:
			return tree, index + tree.leftNodes
		}
	}
	return nil, -1
}
