// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

// VoxelOctree binds an [Octree] to a cubical volume of world space: an
// [AABB] tracking the root's extent, and the tree's height tracking how
// many subdivisions separate the root from its maximum-depth voxels.
type VoxelOctree[T any, R Real, Idx Index] struct {
	tree      *Octree[T, Idx]
	aabb      AABB[R]
	height    Idx
	voxelSize R
}

// NewVoxelOctree seeds a tree whose single-node root cube has the given
// side length, positioned at the world origin.
func NewVoxelOctree[T any, R Real, Idx Index](voxelSize R) *VoxelOctree[T, R, Idx] {
	return &VoxelOctree[T, R, Idx]{
		tree:      NewOctree[T, Idx](),
		aabb:      AABB[R]{Length: voxelSize},
		voxelSize: voxelSize,
	}
}

// Base returns the underlying index-based tree.
func (v *VoxelOctree[T, R, Idx]) Base() *Octree[T, Idx] { return v.tree }

// AABB returns the world-space cube currently covered by the tree's root.
func (v *VoxelOctree[T, R, Idx]) AABB() AABB[R] { return v.aabb }

// Height returns the tree's current height.
func (v *VoxelOctree[T, R, Idx]) Height() Idx { return v.height }

// VoxelSize returns the side length of a leaf voxel at maximum depth.
func (v *VoxelOctree[T, R, Idx]) VoxelSize() R { return v.voxelSize }

// Grow extends the tree upward in the direction of oct: the current root
// becomes the oct-th child of a fresh root, and the AABB grows to the
// exact parent cube per [AABB.Parent].
func (v *VoxelOctree[T, R, Idx]) Grow(oct Octant) (Idx, error) {
	newRoot, err := v.tree.Grow(oct)
	if err != nil {
		return 0, err
	}
	v.height++
	v.aabb = v.aabb.Parent(oct)
	return newRoot, nil
}

// heightAtMax reports whether growing again would overflow Idx, the
// safeguard against an unbounded growth loop on a pathological point far
// from the current AABB.
func (v *VoxelOctree[T, R, Idx]) heightAtMax() bool {
	return v.height+1 == 0
}

// growOctant picks the octant a cube with the given origin must grow
// toward to move closer to containing p: bit i is set, growing that
// axis in the negative direction, exactly when p already lies below
// origin on axis i; otherwise growth proceeds in the positive
// direction. An axis on which p is already inside [origin, max] keeps
// its default positive-growth bit, leaving that axis's origin (and
// hence everything already stored under it) untouched.
func growOctant[R Real](origin [3]R, p [3]R) Octant {
	return NewOctant(p[0] < origin[0], p[1] < origin[1], p[2] < origin[2])
}

// GrowToContain grows the tree, one step at a time toward p, until its
// AABB contains p. Reports whether any growth occurred.
//
// Growth stops early, leaving p possibly still uncontained, if Height
// would overflow Idx; pathologically distant points should use a wider
// Idx rather than rely on unbounded growth.
func (v *VoxelOctree[T, R, Idx]) GrowToContain(p [3]R) bool {
	grew := false
	for !v.aabb.Contains(p) {
		if v.heightAtMax() {
			break
		}
		oct := growOctant(v.aabb.Origin, p)
		_, _ = v.Grow(oct)
		grew = true
	}
	return grew
}

// GrowToContainAABB grows the tree until its AABB contains both corners
// of other, letting a driver pre-expand around a known volume in one
// call instead of per-point.
func (v *VoxelOctree[T, R, Idx]) GrowToContainAABB(other AABB[R]) bool {
	grew := false
	max := other.Max()
	for !v.aabb.Contains(other.Origin) || !v.aabb.Contains(max) {
		if v.heightAtMax() {
			break
		}
		target := other.Origin
		if v.aabb.Contains(target) {
			target = max
		}
		oct := growOctant(v.aabb.Origin, target)
		_, _ = v.Grow(oct)
		grew = true
	}
	return grew
}

// NodeContaining descends from the root toward p, following the
// AABB-child chain at each Branch, and stops at the first non-Branch
// node; there is no separate depth limit. It fails with
// ErrPointOutOfBounds if p falls outside the tree's current AABB.
func (v *VoxelOctree[T, R, Idx]) NodeContaining(p [3]R) (AABB[R], Idx, Node[T, Idx], Idx, error) {
	var zeroNode Node[T, Idx]
	if !v.aabb.Contains(p) {
		return AABB[R]{}, 0, zeroNode, 0, pointOutOfBoundsErr(p, v.aabb)
	}
	idx := v.tree.root
	box := v.aabb
	var depth Idx
	for {
		node, _ := v.tree.Node(idx)
		if !node.IsBranch() {
			return box, idx, node, depth, nil
		}
		oct, childBox := box.ChildContainingUnchecked(p)
		children, _ := node.Branch()
		idx = children[oct]
		box = childBox
		depth++
	}
}

// InsertVoxelAt locates the maximum-depth voxel containing p, subdividing
// along the way with [Octree.Branch], and stores v there with
// [Octree.SetLeaf]. It returns the payload displaced by a prior insert
// at the same voxel, if any.
func (v *VoxelOctree[T, R, Idx]) InsertVoxelAt(p [3]R, val T) (T, bool, error) {
	var zero T
	box, idx, _, depth, err := v.NodeContaining(p)
	if err != nil {
		return zero, false, err
	}
	for depth < v.height {
		children, berr := v.tree.Branch(idx)
		if berr != nil {
			return zero, false, wrapTreeErr(berr)
		}
		oct, childBox := box.ChildContainingUnchecked(p)
		idx = children[oct]
		box = childBox
		depth++
	}
	displaced, serr := v.tree.SetLeaf(idx, val)
	if serr != nil {
		return zero, false, wrapTreeErr(serr)
	}
	if len(displaced) == 0 {
		return zero, false, nil
	}
	return displaced[0], true, nil
}
