// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

// AABB is an axis-aligned bounding cube: an origin corner plus a single
// side length shared by all three axes.
type AABB[R Real] struct {
	Origin [3]R
	Length R
}

// NewAABB constructs a cube from its origin corner and side length.
func NewAABB[R Real](origin [3]R, length R) AABB[R] {
	return AABB[R]{Origin: origin, Length: length}
}

// Max returns the cube's far corner, origin + (length, length, length).
func (b AABB[R]) Max() [3]R {
	return [3]R{b.Origin[0] + b.Length, b.Origin[1] + b.Length, b.Origin[2] + b.Length}
}

// Contains reports whether p falls within the cube, inclusive on both
// the near and far faces of every axis.
func (b AABB[R]) Contains(p [3]R) bool {
	max := b.Max()
	for i := range p {
		if p[i] < b.Origin[i] || p[i] > max[i] {
			return false
		}
	}
	return true
}

// Center returns the cube's componentwise midpoint.
func (b AABB[R]) Center() [3]R {
	half := b.Length / 2
	return [3]R{b.Origin[0] + half, b.Origin[1] + half, b.Origin[2] + half}
}

// OctantOf reports which octant of the cube p falls in, comparing
// strictly against Center on each axis. A point exactly on a splitting
// plane is assigned to the lower-coordinate octant.
func (b AABB[R]) OctantOf(p [3]R) Octant {
	c := b.Center()
	return NewOctant(p[0] > c[0], p[1] > c[1], p[2] > c[2])
}

// Child returns the half-size sub-cube occupying oct of this cube.
func (b AABB[R]) Child(oct Octant) AABB[R] {
	half := b.Length / 2
	origin := b.Origin
	if oct.I() != 0 {
		origin[0] += half
	}
	if oct.J() != 0 {
		origin[1] += half
	}
	if oct.K() != 0 {
		origin[2] += half
	}
	return AABB[R]{Origin: origin, Length: half}
}

// Parent returns the double-size cube in which b occupies oct. Parent
// and Child are exact inverses: b.Parent(oct).Child(oct) == b.
func (b AABB[R]) Parent(oct Octant) AABB[R] {
	origin := b.Origin
	if oct.I() != 0 {
		origin[0] -= b.Length
	}
	if oct.J() != 0 {
		origin[1] -= b.Length
	}
	if oct.K() != 0 {
		origin[2] -= b.Length
	}
	return AABB[R]{Origin: origin, Length: b.Length * 2}
}

// ChildContainingUnchecked is OctantOf and Child composed, without
// checking that p actually falls within b.
func (b AABB[R]) ChildContainingUnchecked(p [3]R) (Octant, AABB[R]) {
	oct := b.OctantOf(p)
	return oct, b.Child(oct)
}

// ChildContaining is ChildContainingUnchecked, failing with
// ErrPointOutOfBounds if p does not fall within b.
func (b AABB[R]) ChildContaining(p [3]R) (Octant, AABB[R], error) {
	if !b.Contains(p) {
		return 0, AABB[R]{}, pointOutOfBoundsErr(p, b)
	}
	oct, child := b.ChildContainingUnchecked(p)
	return oct, child, nil
}

// ParentContaining grows b upward, one step at a time toward p via
// [AABB.Parent], until it contains p. Each step grows the axes on which
// p currently falls outside b in the direction that closes the gap;
// axes already containing p keep their current side, so the growth
// never needlessly shifts axes that don't need it.
func (b AABB[R]) ParentContaining(p [3]R) AABB[R] {
	for !b.Contains(p) {
		b = b.Parent(growOctant(b.Origin, p))
	}
	return b
}
