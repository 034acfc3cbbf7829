// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

import "github.com/gaissmai/octree/internal/octant"

// Index is the constraint on the integer type used for every intra-tree
// reference (proxy, branch and leaf arena slots, and grid coordinates).
// Smaller widths save memory when a tree is known to fit; [UpcastOctree]
// converts a compressed tree to a wider width after the fact.
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Real is the constraint on the floating-point type used for AABB and
// voxel-size coordinates.
type Real interface {
	~float32 | ~float64
}

// Octant names one of the eight children of a node. See
// [github.com/gaissmai/octree/internal/octant] for the bit layout.
type Octant = octant.Octant

// AllOctants enumerates the eight octants in ascending value order.
var AllOctants = octant.All

// NewOctant packs three booleans into an Octant: i*4 | j*2 | k.
func NewOctant(i, j, k bool) Octant { return octant.New(i, j, k) }

// NodePoint is the grid coordinate of a node at depth D within the
// implicit 2^D × 2^D × 2^D grid that depth implies. Coordinates
// accumulate raw octant bit-magnitudes along the path from the root, not
// depth-scaled offsets — see [Octant]'s doc comment on its I/J/K
// accessors, and pin this with tests rather than "fixing" it.
type NodePoint[Idx Index] struct {
	X, Y, Z, D Idx
}

// Child returns the NodePoint of the o-th child of n.
func (n NodePoint[Idx]) Child(o Octant) NodePoint[Idx] {
	return NodePoint[Idx]{
		X: n.X + Idx(o.I()),
		Y: n.Y + Idx(o.J()),
		Z: n.Z + Idx(o.K()),
		D: n.D + 1,
	}
}

// VoxelPoint is a grid coordinate in the tree's maximum-depth grid.
type VoxelPoint[Idx Index] struct {
	X, Y, Z Idx
}
