// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with cached subtree heights and
// the addition of parent pointers to allow neighbour queries and
// iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Readers may share a tree, but never with a writer.
//
// Insert and delete are recursive and return the possibly rotated
// root of each sub-tree so the caller simply re-links it.  Each node
// caches its height (a leaf is 0, an absent node is -1) and the sizes
// of its two sub-trees, the latter allowing indexed access.
//
// An insert with an existing key overwrites the data associated with
// the key, so keys are always unique.  Delete of a node with two
// children copies the in-order successor into that node, so a *Node
// must not be retained across any insert or delete.
package avl
