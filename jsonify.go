// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

// DumpNode is one node of a recursive, JSON-round-trippable dump of an
// Octree, produced by [Octree.DumpList] and consumed by
// [LoadDumpList]. Kind is "void", "leaf" or "branch"; Value is
// populated only for "leaf", Children only for "branch" (always
// length 8, in Octant order).
type DumpNode[T any, Idx Index] struct {
	Point    NodePoint[Idx]     `json:"point"`
	Kind     string             `json:"kind"`
	Value    T                  `json:"value,omitempty"`
	Children []DumpNode[T, Idx] `json:"children,omitempty"`
}

// DumpList walks the tree depth-first from the root and returns it as
// a single-element list holding the root's [DumpNode] (a list, not a
// bare value, so serialized output has a stable top-level shape
// whether or not a future version grows multiple independent roots).
func (t *Octree[T, Idx]) DumpList() []DumpNode[T, Idx] {
	return []DumpNode[T, Idx]{t.dumpNodeRec(t.root, NodePoint[Idx]{})}
}

func (t *Octree[T, Idx]) dumpNodeRec(idx Idx, np NodePoint[Idx]) DumpNode[T, Idx] {
	p, _ := t.proxies.Get(idxToInt(idx))
	switch p.kind {
	case kindLeaf:
		v, _ := t.leaves.Get(idxToInt(p.data))
		return DumpNode[T, Idx]{Point: np, Kind: "leaf", Value: v}
	case kindBranch:
		b := t.branches.MustGet(idxToInt(p.data))
		children := make([]DumpNode[T, Idx], len(b))
		for i, c := range b {
			children[i] = t.dumpNodeRec(c, np.Child(Octant(i)))
		}
		return DumpNode[T, Idx]{Point: np, Kind: "branch", Children: children}
	default:
		return DumpNode[T, Idx]{Point: np, Kind: "void"}
	}
}
