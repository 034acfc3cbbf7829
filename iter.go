// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

import "iter"

// LeafDFI returns a depth-first, pre-order iterator over every leaf in
// the tree, paired with its NodePoint, ordered nearest-to-farthest by
// Octant within each branch. It walks an explicit stack of (node,
// next-child-octant, NodePoint) frames rather than recursing, so it
// scales to trees far deeper than the goroutine stack would comfortably
// recurse through.
func (t *Octree[T, Idx]) LeafDFI() iter.Seq2[NodePoint[Idx], T] {
	return t.leafDFIFrom(t.root, NodePoint[Idx]{})
}

func (t *Octree[T, Idx]) leafDFIFrom(root Idx, rootNp NodePoint[Idx]) iter.Seq2[NodePoint[Idx], T] {
	return func(yield func(NodePoint[Idx], T) bool) {
		type frame struct {
			idx Idx
			oct Octant
			np  NodePoint[Idx]
		}
		var stack []frame
		cur := frame{idx: root, np: rootNp}
		done := false
		for !done {
			p, _ := t.proxies.Get(idxToInt(cur.idx))
			switch p.kind {
			case kindVoid:
				if len(stack) == 0 {
					done = true
					break
				}
				cur, stack = stack[len(stack)-1], stack[:len(stack)-1]
			case kindLeaf:
				v, _ := t.leaves.Get(idxToInt(p.data))
				if !yield(cur.np, v) {
					return
				}
				if len(stack) == 0 {
					done = true
					break
				}
				cur, stack = stack[len(stack)-1], stack[:len(stack)-1]
			case kindBranch:
				if cur.oct >= 8 {
					if len(stack) == 0 {
						done = true
						break
					}
					cur, stack = stack[len(stack)-1], stack[:len(stack)-1]
					break
				}
				b := t.branches.MustGet(idxToInt(p.data))
				childIdx := b[cur.oct]
				childNp := cur.np.Child(cur.oct)
				stack = append(stack, frame{idx: cur.idx, oct: cur.oct + 1, np: cur.np})
				cur = frame{idx: childIdx, np: childNp}
			}
		}
	}
}

// LeafUnordered iterates every leaf payload in arena order (ascending
// leaf slot index), with no spatial relationship implied.
func (t *Octree[T, Idx]) LeafUnordered() iter.Seq[T] {
	return t.leaves.All()
}
