// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

// Graft splices other into node, which must already be a Branch in t.
// Every node of other is moved (not copied) into t's arenas; other is
// left empty afterward. node keeps its own parent; everything below it
// becomes other's former subtree.
func (t *Octree[T, Idx]) Graft(other *Octree[T, Idx], node Idx) error {
	p, ok := t.proxies.Get(idxToInt(node))
	if !ok {
		return invalidIndexErr(node)
	}
	if p.kind != kindBranch {
		return notABranchErr(node)
	}
	t.graftUnchecked(other, node)
	return nil
}

// graftUnchecked implements Graft without the precondition check. node
// must already be a valid proxy index in t.
func (t *Octree[T, Idx]) graftUnchecked(other *Octree[T, Idx], node Idx) {
	oRoot, _ := other.proxies.Remove(idxToInt(other.root))
	tp := t.proxies.MustGet(idxToInt(node))
	tp.kind = oRoot.kind
	tp.data = oRoot.data

	lSwaps := t.leaves.ExtendFrom(other.leaves)
	bSwaps := t.branches.ExtendFrom(other.branches)
	pSwaps := t.proxies.ExtendFrom(other.proxies)
	pSwaps[idxToInt(other.root)] = idxToInt(node)

	type frame struct {
		idx Idx
		p   proxy[Idx]
	}
	stack := []frame{{node, *t.proxies.MustGet(idxToInt(node))}}
	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		if f.idx != node {
			np := pSwaps[idxToInt(f.p.parent)]
			t.proxies.MustGet(idxToInt(f.idx)).parent = intToIdx[Idx](np)
		}
		switch f.p.kind {
		case kindVoid:
		case kindLeaf:
			nl := lSwaps[idxToInt(f.p.data)]
			t.proxies.MustGet(idxToInt(f.idx)).data = intToIdx[Idx](nl)
		case kindBranch:
			nb := bSwaps[idxToInt(f.p.data)]
			t.proxies.MustGet(idxToInt(f.idx)).data = intToIdx[Idx](nb)
			b := t.branches.MustGet(nb)
			for ci := range b {
				oldChild := idxToInt(b[ci])
				newChild := pSwaps[oldChild]
				b[ci] = intToIdx[Idx](newChild)
				cp, _ := t.proxies.Get(newChild)
				stack = append(stack, frame{intToIdx[Idx](newChild), cp})
			}
		}
	}
}
