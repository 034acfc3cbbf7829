// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

// LeafMerge lets leaf payloads of type T collapse a branch into a single
// leaf: [MergeBranch] reduces a subtree's leaves pairwise with Merge,
// destroying everything below the branch in the process. All merges
// occur between leaves at the same depth, left to right in Octant order.
type LeafMerge[T any] interface {
	Merge(other T) T
}

func internalMergeBranch[T LeafMerge[T], Idx Index](t *Octree[T, Idx], childrenIdx Idx) (T, bool) {
	var res T
	haveRes := false
	b, _ := t.branches.Remove(idxToInt(childrenIdx))
	for _, c := range b {
		p, _ := t.proxies.Remove(idxToInt(c))
		switch p.kind {
		case kindVoid:
		case kindLeaf:
			v, _ := t.leaves.Remove(idxToInt(p.data))
			if haveRes {
				res = res.Merge(v)
			} else {
				res, haveRes = v, true
			}
		case kindBranch:
			d, ok := internalMergeBranch[T](t, p.data)
			if !ok {
				continue
			}
			if haveRes {
				res = res.Merge(d)
			} else {
				res, haveRes = d, true
			}
		}
	}
	return res, haveRes
}

// MergeBranch collapses the branch at branchIdx into a single leaf,
// reducing every descendant leaf pairwise via [LeafMerge.Merge]. The
// entire subtree below branchIdx is destroyed; only the resulting leaf
// survives. Returns ErrNoLeafs (leaving branchIdx Void) if the subtree
// held no leaves at all.
func MergeBranch[T LeafMerge[T], Idx Index](t *Octree[T, Idx], branchIdx Idx) (T, error) {
	var zero T
	p, ok := t.proxies.Get(idxToInt(branchIdx))
	if !ok {
		return zero, invalidIndexErr(branchIdx)
	}
	if p.kind != kindBranch {
		return zero, notABranchErr(branchIdx)
	}
	res, haveRes := internalMergeBranch[T](t, p.data)
	tp := t.proxies.MustGet(idxToInt(branchIdx))
	if !haveRes {
		tp.kind = kindVoid
		return zero, noLeafsErr(branchIdx)
	}
	li := t.leaves.Push(res)
	tp.kind = kindLeaf
	tp.data = intToIdx[Idx](li)
	return res, nil
}
