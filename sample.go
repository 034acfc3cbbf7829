// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

// LeafSample lets leaf payloads of type T be non-destructively reduced
// over a subtree: [SampleBranch] and [SampleAt] combine leaf copies with
// Sample without mutating the tree.
type LeafSample[T any] interface {
	Sample(other T) T
}

func internalSampleBranch[T LeafSample[T], Idx Index](t *Octree[T, Idx], childrenIdx Idx) (T, bool) {
	var res T
	haveRes := false
	b := t.branches.MustGet(idxToInt(childrenIdx))
	for _, c := range b {
		p, _ := t.proxies.Get(idxToInt(c))
		switch p.kind {
		case kindVoid:
		case kindLeaf:
			v, _ := t.leaves.Get(idxToInt(p.data))
			if haveRes {
				res = res.Sample(v)
			} else {
				res, haveRes = v, true
			}
		case kindBranch:
			d, ok := internalSampleBranch[T](t, p.data)
			if !ok {
				continue
			}
			if haveRes {
				res = res.Sample(d)
			} else {
				res, haveRes = d, true
			}
		}
	}
	return res, haveRes
}

// SampleBranch returns the reduction, via [LeafSample.Sample], of every
// leaf in the subtree rooted at branchIdx, without modifying the tree.
// Returns ErrNoLeafs if the subtree holds no leaves.
func SampleBranch[T LeafSample[T], Idx Index](t *Octree[T, Idx], branchIdx Idx) (T, error) {
	var zero T
	p, ok := t.proxies.Get(idxToInt(branchIdx))
	if !ok {
		return zero, invalidIndexErr(branchIdx)
	}
	if p.kind != kindBranch {
		return zero, notABranchErr(branchIdx)
	}
	res, haveRes := internalSampleBranch[T](t, p.data)
	if !haveRes {
		return zero, noLeafsErr(branchIdx)
	}
	return res, nil
}

// SampleAt locates the deepest node containing np, then samples it: a
// Leaf is returned directly, a Branch is reduced via [LeafSample.Sample]
// across its subtree, and a Void (or an empty Branch subtree) falls back
// to the parent chain, walking up until a sample is found or the root is
// exhausted. The bool result is false only when no ancestor yields one.
func SampleAt[T LeafSample[T], Idx Index](t *Octree[T, Idx], np NodePoint[Idx]) (T, bool) {
	var zero T
	node := t.NodeAt(np)
	p, _ := t.proxies.Get(idxToInt(node))
	for {
		switch p.kind {
		case kindVoid:
		case kindLeaf:
			v, _ := t.leaves.Get(idxToInt(p.data))
			return v, true
		case kindBranch:
			if d, ok := internalSampleBranch[T](t, p.data); ok {
				return d, true
			}
		}
		if p.parent == node {
			return zero, false
		}
		node = p.parent
		p, _ = t.proxies.Get(idxToInt(node))
	}
}
