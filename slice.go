// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

import "iter"

// OctreeSlice is the shape shared by a whole [Octree] and a [TreeSlice]
// view onto one of its subtrees: everything expressible purely in terms
// of "the root of my view, and the tree below it".
type OctreeSlice[T any, Idx Index] interface {
	// RootIdx is the index of this view's root node.
	RootIdx() Idx
	// HeightFrom is the height of the subtree rooted at idx, regardless
	// of whether idx falls inside this view.
	HeightFrom(idx Idx) Idx
	// Height is HeightFrom(RootIdx()).
	Height() Idx
	// GridSize is the side length, in voxels, of the grid this view's
	// height implies: 2^Height().
	GridSize() Idx
	// LeafDFI iterates this view's leaves depth-first, paired with a
	// NodePoint relative to RootIdx().
	LeafDFI() iter.Seq2[NodePoint[Idx], T]
}

var (
	_ OctreeSlice[struct{}, uint32] = (*Octree[struct{}, uint32])(nil)
	_ OctreeSlice[struct{}, uint32] = TreeSlice[struct{}, uint32]{}
)

// TreeSlice is a read-only view of the subtree rooted at one node of an
// Octree, caching the depth and height computed at the time it was
// taken. A TreeSlice does not track subsequent mutation of its tree; if
// the tree structure changes below root, height becomes stale.
type TreeSlice[T any, Idx Index] struct {
	tree   *Octree[T, Idx]
	root   Idx
	depth  Idx
	height Idx
}

// Slice returns a view of the subtree rooted at index.
func (t *Octree[T, Idx]) Slice(index Idx) (TreeSlice[T, Idx], error) {
	if !t.proxies.IsInit(idxToInt(index)) {
		return TreeSlice[T, Idx]{}, invalidIndexErr(index)
	}
	height := t.HeightFrom(index)
	if index == t.root {
		height = t.Height()
	}
	return TreeSlice[T, Idx]{
		tree:   t,
		root:   index,
		depth:  t.depthOfUnchecked(index),
		height: height,
	}, nil
}

// AsSlice returns a view of the whole tree.
func (t *Octree[T, Idx]) AsSlice() TreeSlice[T, Idx] {
	return TreeSlice[T, Idx]{tree: t, root: t.root, height: t.Height()}
}

// Base returns the underlying tree a slice was taken from.
func (s TreeSlice[T, Idx]) Base() *Octree[T, Idx] { return s.tree }

// Depth is the depth, within the underlying tree, of this slice's root.
func (s TreeSlice[T, Idx]) Depth() Idx { return s.depth }

func (s TreeSlice[T, Idx]) RootIdx() Idx            { return s.root }
func (s TreeSlice[T, Idx]) HeightFrom(idx Idx) Idx  { return s.tree.HeightFrom(idx) }
func (s TreeSlice[T, Idx]) Height() Idx             { return s.height }
func (s TreeSlice[T, Idx]) GridSize() Idx           { return Idx(1) << s.Height() }

func (s TreeSlice[T, Idx]) LeafDFI() iter.Seq2[NodePoint[Idx], T] {
	return s.tree.leafDFIFrom(s.root, NodePoint[Idx]{})
}
