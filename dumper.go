// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

import (
	"fmt"
	"strings"
)

// Debug returns a one-line-per-proxy dump of every node in the tree,
// useful during development and in test failure output when Fprint's
// tree diagram is too compressed to see what a test actually cares
// about: every node's own index, its NodePoint, its parent, and its
// payload or children.
//
//	 Output:
//
//		[B] idx=3 np={X:0 Y:0 Z:0 D:0} parent=3 children=[1 2 0 4 5 6 7 8]
//		.[V] idx=1 np={X:0 Y:0 Z:0 D:1} parent=3
//		.[V] idx=2 np={X:0 Y:0 Z:1 D:1} parent=3
//		.[L] idx=0 np={X:0 Y:1 Z:0 D:1} parent=3 value=42
//		...
func (t *Octree[T, Idx]) Debug() string {
	w := new(strings.Builder)
	t.debugDump(w, t.root, NodePoint[Idx]{})
	return w.String()
}

func (t *Octree[T, Idx]) debugDump(w *strings.Builder, idx Idx, np NodePoint[Idx]) {
	p, _ := t.proxies.Get(idxToInt(idx))
	indent := strings.Repeat(".", int(np.D))

	switch p.kind {
	case kindLeaf:
		v, _ := t.leaves.Get(idxToInt(p.data))
		fmt.Fprintf(w, "%s[L] idx=%v np=%+v parent=%v value=%v\n", indent, idx, np, p.parent, v)
	case kindBranch:
		b := t.branches.MustGet(idxToInt(p.data))
		fmt.Fprintf(w, "%s[B] idx=%v np=%+v parent=%v children=%v\n", indent, idx, np, p.parent, *b)
		for i, c := range b {
			t.debugDump(w, c, np.Child(Octant(i)))
		}
	default:
		fmt.Fprintf(w, "%s[V] idx=%v np=%+v parent=%v\n", indent, idx, np, p.parent)
	}
}
