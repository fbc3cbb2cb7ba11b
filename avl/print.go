// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
)

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// connector drawn before each node
var connectors = map[branch]string{
	root:  "|------+ ",
	left:  "\\------+ ",
	right: "/------+ ",
}

// Print - display an ASCII graphic representation of the tree on stdout
// returns the number of levels
func (tree *Tree) Print(printData bool) int {
	return tree.Fprint(os.Stdout, printData)
}

// Fprint - as Print but to any writer, right sub-trees are drawn above
// their parent and left sub-trees below
func (tree *Tree) Fprint(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

func printTree(w io.Writer, p *Node, prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}

	// a vertical bar continues the line down to this node's parent
	indent := func(inner branch) string {
		if inner == br {
			return prefix + "|      "
		}
		return prefix + "       "
	}

	rd := printTree(w, p.right, indent(left), right, printData)

	fmt.Fprintf(w, "%s%s", prefix, connectors[br])
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v h:%d/[%d,%d]\n", p.key, p.value, keyOrNil(p.up), p.height, p.leftNodes, p.rightNodes)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", p.key, keyOrNil(p.up))
	}

	ld := printTree(w, p.left, indent(right), left, printData)

	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
