// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

import "github.com/gaissmai/octree/internal/stablevec"

// Octree is a pointer-free, arena-backed tree that recursively
// partitions a cubic volume into eight equal sub-cubes. Every reference
// between nodes — parent, branch child, leaf payload — is an index into
// one of three internal arenas, never a pointer.
//
// Octree is not safe for concurrent readers and writers; wrap it in
// whatever external synchronization the caller needs. The zero value is
// not usable; construct with [NewOctree].
type Octree[T any, Idx Index] struct {
	_ noCopy

	proxies  *stablevec.Vec[proxy[Idx]]
	branches *stablevec.Vec[branch[Idx]]
	leaves   *stablevec.Vec[T]
	root     Idx
}

func idxToInt[Idx Index](i Idx) int  { return int(i) }
func intToIdx[Idx Index](i int) Idx  { return Idx(i) }

// NewOctree constructs a tree with a single Void root.
func NewOctree[T any, Idx Index]() *Octree[T, Idx] {
	t := &Octree[T, Idx]{
		proxies:  stablevec.New[proxy[Idx]](),
		branches: stablevec.New[branch[Idx]](),
		leaves:   stablevec.New[T](),
	}
	rootIdx := t.proxies.Push(proxy[Idx]{kind: kindVoid})
	t.root = intToIdx[Idx](rootIdx)
	// the root's parent is itself: the self-loop root sentinel.
	t.proxies.MustGet(rootIdx).parent = t.root
	return t
}

// RootIdx returns the index of the tree's root proxy.
func (t *Octree[T, Idx]) RootIdx() Idx { return t.root }

// ProxyCount, BranchCount and LeafCount report the number of
// initialized slots in each arena; useful for debug output and tests.
func (t *Octree[T, Idx]) ProxyCount() int  { return t.proxies.Len() }
func (t *Octree[T, Idx]) BranchCount() int { return t.branches.Len() }
func (t *Octree[T, Idx]) LeafCount() int   { return t.leaves.Len() }

// IsInit reports whether idx names an initialized proxy.
func (t *Octree[T, Idx]) IsInit(idx Idx) bool { return t.proxies.IsInit(idxToInt(idx)) }

// LeafAt returns the payload stored at a leaf node, if idx names one.
func (t *Octree[T, Idx]) LeafAt(idx Idx) (T, error) {
	var zero T
	p, ok := t.proxies.Get(idxToInt(idx))
	if !ok {
		return zero, invalidIndexErr(idx)
	}
	if p.kind != kindLeaf {
		return zero, notALeafErr(idx)
	}
	v, _ := t.leaves.Get(idxToInt(p.data))
	return v, nil
}

// DepthOf reports the number of parent hops from idx up to the root.
func (t *Octree[T, Idx]) DepthOf(idx Idx) (Idx, error) {
	if !t.proxies.IsInit(idxToInt(idx)) {
		return 0, invalidIndexErr(idx)
	}
	return t.depthOfUnchecked(idx), nil
}

func (t *Octree[T, Idx]) depthOfUnchecked(node Idx) Idx {
	var depth Idx
	p, _ := t.proxies.Get(idxToInt(node))
	for p.parent != node {
		depth++
		node = p.parent
		p, _ = t.proxies.Get(idxToInt(node))
	}
	return depth
}

// Branch divides the node at target into a Branch, returning its eight
// child indices in Octant order. Branching a Void node allocates eight
// new Void children; branching an existing Branch is a no-op that
// returns the existing children; branching a Leaf fails with
// ErrBranchCollision (a leaf cannot be overwritten by branching).
func (t *Octree[T, Idx]) Branch(target Idx) ([8]Idx, error) {
	var zero [8]Idx
	p, ok := t.proxies.Get(idxToInt(target))
	if !ok {
		return zero, invalidIndexErr(target)
	}
	switch p.kind {
	case kindBranch:
		return [8]Idx(*t.branches.MustGet(idxToInt(p.data))), nil
	case kindLeaf:
		return zero, &TreeError{Kind: ErrBranchCollision, Index: target}
	default: // Void
		var children branch[Idx]
		for i := range children {
			ci := t.proxies.Push(proxy[Idx]{parent: target, kind: kindVoid})
			children[i] = intToIdx[Idx](ci)
		}
		bIdx := t.branches.Push(children)
		tp := t.proxies.MustGet(idxToInt(target))
		tp.kind = kindBranch
		tp.data = intToIdx[Idx](bIdx)
		return [8]Idx(children), nil
	}
}

// flattenBranch recursively reclaims every descendant proxy, branch
// record and leaf of the branch at childrenIdx, returning the reclaimed
// leaf payloads. It does not touch target's own proxy record; callers
// overwrite target.kind/data themselves afterward.
func (t *Octree[T, Idx]) flattenBranch(childrenIdx Idx) []T {
	var res []T
	b, _ := t.branches.Remove(idxToInt(childrenIdx))
	toRemove := append([]Idx(nil), b[:]...)
	for len(toRemove) > 0 {
		n := len(toRemove) - 1
		c := toRemove[n]
		toRemove = toRemove[:n]
		p, ok := t.proxies.Remove(idxToInt(c))
		if !ok {
			continue
		}
		switch p.kind {
		case kindVoid:
		case kindLeaf:
			v, _ := t.leaves.Remove(idxToInt(p.data))
			res = append(res, v)
		case kindBranch:
			cb, _ := t.branches.Remove(idxToInt(p.data))
			toRemove = append(toRemove, cb[:]...)
		}
	}
	return res
}

// Void clears the node at target, returning every leaf payload reclaimed
// from it. Voiding a Branch recursively drops the entire subtree.
func (t *Octree[T, Idx]) Void(target Idx) ([]T, error) {
	p, ok := t.proxies.Get(idxToInt(target))
	if !ok {
		return nil, invalidIndexErr(target)
	}
	switch p.kind {
	case kindVoid:
		return nil, nil
	case kindLeaf:
		v, _ := t.leaves.Remove(idxToInt(p.data))
		tp := t.proxies.MustGet(idxToInt(target))
		tp.kind = kindVoid
		return []T{v}, nil
	default: // Branch
		res := t.flattenBranch(p.data)
		tp := t.proxies.MustGet(idxToInt(target))
		tp.kind = kindVoid
		return res, nil
	}
}

// SetLeaf replaces the node at target's data with v, returning any
// payload(s) displaced. A Branch target is voided first, and its
// reclaimed leaves are returned alongside the (at most one) leaf it
// previously held.
func (t *Octree[T, Idx]) SetLeaf(target Idx, v T) ([]T, error) {
	p, ok := t.proxies.Get(idxToInt(target))
	if !ok {
		return nil, invalidIndexErr(target)
	}
	switch p.kind {
	case kindLeaf:
		old, _ := t.leaves.Set(idxToInt(p.data), v)
		return []T{old}, nil
	case kindVoid:
		li := t.leaves.Push(v)
		tp := t.proxies.MustGet(idxToInt(target))
		tp.kind = kindLeaf
		tp.data = intToIdx[Idx](li)
		return nil, nil
	default: // Branch
		res := t.flattenBranch(p.data)
		li := t.leaves.Push(v)
		tp := t.proxies.MustGet(idxToInt(target))
		tp.kind = kindLeaf
		tp.data = intToIdx[Idx](li)
		return res, nil
	}
}

// Grow extends the tree upward: a new root is created whose oct-th
// child is the old root, and the other seven children are fresh Void
// proxies. It returns the new root's index.
//
// The seven new children's parent field cannot be written until the new
// root's index is known, so this pushes them with a placeholder parent
// first and patches it in a second pass once the new root exists.
func (t *Octree[T, Idx]) Grow(oct Octant) (Idx, error) {
	if !oct.Valid() {
		return 0, childOutOfRangeErr(oct)
	}
	oldRoot := t.root
	t.proxies.Reserve(8)

	var children branch[Idx]
	newChildren := make([]int, 0, 7)
	for i := range children {
		o := Octant(i)
		if o == oct {
			children[i] = oldRoot
			continue
		}
		ci := t.proxies.Push(proxy[Idx]{kind: kindVoid})
		children[i] = intToIdx[Idx](ci)
		newChildren = append(newChildren, ci)
	}

	bIdx := t.branches.Push(children)
	newRootIdx := t.proxies.Push(proxy[Idx]{kind: kindBranch, data: intToIdx[Idx](bIdx)})
	newRoot := intToIdx[Idx](newRootIdx)

	rp := t.proxies.MustGet(newRootIdx)
	rp.parent = newRoot // self-referential, the new root sentinel

	for _, ci := range newChildren {
		t.proxies.MustGet(ci).parent = newRoot
	}
	t.proxies.MustGet(idxToInt(oldRoot)).parent = newRoot

	t.root = newRoot
	return newRoot, nil
}

func (t *Octree[T, Idx]) internalVoxelAt(x, y, z, size Idx) Idx {
	cur := t.root
	p, _ := t.proxies.Get(idxToInt(cur))
	s2 := size >> 1
	for p.kind == kindBranch {
		b := t.branches.MustGet(idxToInt(p.data))
		oct := NewOctant(x > s2, y > s2, z > s2)
		cur = b[oct]
		p, _ = t.proxies.Get(idxToInt(cur))
		s2 >>= 1
	}
	return cur
}

// VoxelAtUnchecked descends from the root to the deepest node
// encompassing p, comparing against the tree's current grid size
// ([Octree.GridSize]) without bounds-checking p.
func (t *Octree[T, Idx]) VoxelAtUnchecked(p VoxelPoint[Idx]) Idx {
	return t.internalVoxelAt(p.X, p.Y, p.Z, t.GridSize())
}

// VoxelAt is VoxelAtUnchecked with a bounds check against the tree's
// current grid size on every axis.
func (t *Octree[T, Idx]) VoxelAt(p VoxelPoint[Idx]) (Idx, error) {
	size := t.GridSize()
	if p.X >= size || p.Y >= size || p.Z >= size {
		return 0, &TreeError{Kind: ErrVoxelOutOfGrid, Index: size, Extra: p}
	}
	return t.internalVoxelAt(p.X, p.Y, p.Z, size), nil
}

// NodeAt descends from the root toward np, stopping at the first
// non-Branch node or when the grid half-size at np's resolution
// underflows — whichever comes first. It never fails: a depth exceeding
// the tree's actual structure returns the deepest ancestor reached.
func (t *Octree[T, Idx]) NodeAt(np NodePoint[Idx]) Idx {
	idx := t.root
	cur, _ := t.proxies.Get(idxToInt(idx))
	ps := Idx(1) << np.D
	s2 := ps >> 1
	px, py, pz := np.X*ps, np.Y*ps, np.Z*ps
	for cur.kind == kindBranch {
		if s2 == 0 {
			break
		}
		b := t.branches.MustGet(idxToInt(cur.data))
		oct := NewOctant(px > s2, py > s2, pz > s2)
		idx = b[oct]
		cur, _ = t.proxies.Get(idxToInt(idx))
		s2 >>= 1
	}
	return idx
}

func (t *Octree[T, Idx]) nodePointOfUnchecked(index Idx) NodePoint[Idx] {
	var x, y, z, d Idx
	p, _ := t.proxies.Get(idxToInt(index))
	for p.parent != index {
		d++
		parentP, _ := t.proxies.Get(idxToInt(p.parent))
		b := t.branches.MustGet(idxToInt(parentP.data))
		var oct Octant
		for i, c := range b {
			if c == index {
				oct = Octant(i)
				break
			}
		}
		x += Idx(oct.I())
		y += Idx(oct.J())
		z += Idx(oct.K())
		index = p.parent
		p, _ = t.proxies.Get(idxToInt(index))
	}
	return NodePoint[Idx]{X: x, Y: y, Z: z, D: d}
}

// NodePointOf recovers the NodePoint of a node by walking its parent
// chain, linear-scanning each ancestor's branch record for the child
// just visited (exactly one match, by the tree's own invariants).
func (t *Octree[T, Idx]) NodePointOf(index Idx) (NodePoint[Idx], error) {
	if !t.proxies.IsInit(idxToInt(index)) {
		return NodePoint[Idx]{}, invalidIndexErr(index)
	}
	return t.nodePointOfUnchecked(index), nil
}

// HeightFrom computes the height of the subtree rooted at idx: the
// maximum depth, relative to idx, of any descendant. There is no cached
// height field — every call walks the subtree.
func (t *Octree[T, Idx]) HeightFrom(idx Idx) Idx {
	type frame struct {
		idx   Idx
		depth Idx
	}
	var maxDepth Idx
	stack := []frame{{idx, 0}}
	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]
		if f.depth > maxDepth {
			maxDepth = f.depth
		}
		p, ok := t.proxies.Get(idxToInt(f.idx))
		if !ok || p.kind != kindBranch {
			continue
		}
		b := t.branches.MustGet(idxToInt(p.data))
		for _, c := range b {
			stack = append(stack, frame{c, f.depth + 1})
		}
	}
	return maxDepth
}

// Height is HeightFrom computed from the root: the number of
// subdivisions between the root and the deepest node in the tree.
func (t *Octree[T, Idx]) Height() Idx { return t.HeightFrom(t.root) }

// GridSize is the side length, in voxels, of the cubical grid implied by
// the tree's current height: 2^Height().
func (t *Octree[T, Idx]) GridSize() Idx { return Idx(1) << t.Height() }

// Defragment partitions every arena so initialized slots occupy a
// contiguous prefix, then rewrites every stored index (parent, leaf and
// branch payload references, and every branch record entry) to match.
func (t *Octree[T, Idx]) Defragment() {
	pSwaps := t.proxies.Defragment()
	lSwaps := t.leaves.Defragment()
	bSwaps := t.branches.Defragment()

	for i, p := range t.proxies.Enumerate() {
		if np, ok := pSwaps[idxToInt(p.parent)]; ok {
			p.parent = intToIdx[Idx](np)
		}
		switch p.kind {
		case kindLeaf:
			if nl, ok := lSwaps[idxToInt(p.data)]; ok {
				p.data = intToIdx[Idx](nl)
			}
		case kindBranch:
			if nb, ok := bSwaps[idxToInt(p.data)]; ok {
				p.data = intToIdx[Idx](nb)
			}
			b := t.branches.MustGet(idxToInt(p.data))
			for ci := range b {
				if nc, ok := pSwaps[idxToInt(b[ci])]; ok {
					b[ci] = intToIdx[Idx](nc)
				}
			}
		}
		*t.proxies.MustGet(i) = p
	}

	if nr, ok := pSwaps[idxToInt(t.root)]; ok {
		t.root = intToIdx[Idx](nr)
	}
}

// Compress defragments, then shrinks every arena's backing allocation to
// its initialized count.
func (t *Octree[T, Idx]) Compress() {
	t.Defragment()
	t.proxies.Compress()
	t.branches.Compress()
	t.leaves.Compress()
}

// CloneLeaves returns every leaf payload in arena order, deep-cloned via
// [Cloner.Clone] for payloads that implement it and shallow-copied
// otherwise.
func (t *Octree[T, Idx]) CloneLeaves() []T {
	out := make([]T, 0, t.leaves.Len())
	for v := range t.leaves.All() {
		if c, ok := any(v).(Cloner[T]); ok {
			out = append(out, c.Clone())
		} else {
			out = append(out, v)
		}
	}
	return out
}

// UpcastOctree converts a tree parameterized over a narrower index type
// to one parameterized over a wider index type, after compressing the
// source so its arenas are densely packed from 0.
func UpcastOctree[T any, OldIdx Index, NewIdx Index](t *Octree[T, OldIdx]) *Octree[T, NewIdx] {
	t.Compress()
	nt := &Octree[T, NewIdx]{
		proxies:  stablevec.New[proxy[NewIdx]](),
		branches: stablevec.New[branch[NewIdx]](),
		leaves:   stablevec.New[T](),
	}
	for _, p := range t.proxies.Enumerate() {
		nt.proxies.Push(proxy[NewIdx]{
			parent: NewIdx(p.parent),
			kind:   p.kind,
			data:   NewIdx(p.data),
		})
	}
	for _, b := range t.branches.Enumerate() {
		var nb branch[NewIdx]
		for i, c := range b {
			nb[i] = NewIdx(c)
		}
		nt.branches.Push(nb)
	}
	for v := range t.leaves.All() {
		nt.leaves.Push(v)
	}
	nt.root = NewIdx(t.root)
	return nt
}
