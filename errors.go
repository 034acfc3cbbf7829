// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

import "fmt"

// ErrorKind identifies the structural failure mode a [TreeError] reports.
type ErrorKind uint8

const (
	// ErrInvalidIndex: the named proxy slot is not initialized.
	ErrInvalidIndex ErrorKind = iota
	// ErrNotABranch: a branch-only operation was attempted on a non-branch node.
	ErrNotABranch
	// ErrNotALeaf: a leaf-only operation was attempted on a non-leaf node.
	ErrNotALeaf
	// ErrNotAVoid: a void-only operation was attempted on a non-void node.
	ErrNotAVoid
	// ErrBranchCollision: branch was called on a leaf.
	ErrBranchCollision
	// ErrNoLeafs: merge_branch/sample_branch found no leaf in the subtree.
	ErrNoLeafs
	// ErrVoxelOutOfGrid: a VoxelPoint fell outside [0, 2^height) on some axis.
	ErrVoxelOutOfGrid
	// ErrChildOutOfRange: an Octant value >= 8 was supplied externally.
	ErrChildOutOfRange
)

// TreeError is the error type returned by every Octree accessor and
// mutator that can fail. Use errors.Is against the Kind field's sentinel
// comparison via [TreeError.Is], or inspect Kind directly.
type TreeError struct {
	Kind  ErrorKind
	Index any // the offending index, when applicable
	Extra any // ChildOutOfRange's octant value, VoxelOutOfGrid's (size, point), etc.
}

func (e *TreeError) Error() string {
	switch e.Kind {
	case ErrInvalidIndex:
		return fmt.Sprintf("octree: index %v is not initialized", e.Index)
	case ErrNotABranch:
		return fmt.Sprintf("octree: node %v is not a branch", e.Index)
	case ErrNotALeaf:
		return fmt.Sprintf("octree: node %v is not a leaf", e.Index)
	case ErrNotAVoid:
		return fmt.Sprintf("octree: node %v is not void", e.Index)
	case ErrBranchCollision:
		return fmt.Sprintf("octree: cannot branch leaf node %v", e.Index)
	case ErrNoLeafs:
		return fmt.Sprintf("octree: no descendant of node %v is a leaf", e.Index)
	case ErrVoxelOutOfGrid:
		return fmt.Sprintf("octree: voxel point %v outside grid size %v", e.Extra, e.Index)
	case ErrChildOutOfRange:
		return fmt.Sprintf("octree: octant %v out of range 0..8", e.Extra)
	default:
		return "octree: unknown error"
	}
}

// Is reports whether target is a *TreeError of the same [ErrorKind], so
// callers can match one of the kinds above by wrapping it in a bare
// TreeError: errors.Is(err, &TreeError{Kind: ErrNotABranch}).
func (e *TreeError) Is(target error) bool {
	t, ok := target.(*TreeError)
	return ok && t.Kind == e.Kind
}

func invalidIndexErr[Idx Index](idx Idx) error {
	return &TreeError{Kind: ErrInvalidIndex, Index: idx}
}

func notABranchErr[Idx Index](idx Idx) error {
	return &TreeError{Kind: ErrNotABranch, Index: idx}
}

func notALeafErr[Idx Index](idx Idx) error {
	return &TreeError{Kind: ErrNotALeaf, Index: idx}
}

func noLeafsErr[Idx Index](idx Idx) error {
	return &TreeError{Kind: ErrNoLeafs, Index: idx}
}

func childOutOfRangeErr(o Octant) error {
	return &TreeError{Kind: ErrChildOutOfRange, Extra: o}
}

// SpatialErrorKind identifies the failure mode a [SpatialError] reports,
// on top of (and wrapping) any plain [TreeError].
type SpatialErrorKind uint8

const (
	// ErrPointOutOfBounds: a float point fell outside a VoxelOctree's AABB.
	ErrPointOutOfBounds SpatialErrorKind = iota
	// ErrTree: the underlying Octree operation failed; see Unwrap.
	ErrTree
)

// SpatialError is the composite error surfaced by VoxelOctree operations:
// it folds either a spatial-specific failure (point outside the volume)
// or an underlying [TreeError] from the wrapped Octree.
type SpatialError struct {
	Kind  SpatialErrorKind
	Point any
	AABB  any
	Inner error
}

func (e *SpatialError) Error() string {
	switch e.Kind {
	case ErrPointOutOfBounds:
		return fmt.Sprintf("octree: point %v outside aabb %v", e.Point, e.AABB)
	case ErrTree:
		return fmt.Sprintf("octree: %v", e.Inner)
	default:
		return "octree: unknown spatial error"
	}
}

func (e *SpatialError) Unwrap() error { return e.Inner }

func pointOutOfBoundsErr[Real any, AABBT any](p Real, box AABBT) error {
	return &SpatialError{Kind: ErrPointOutOfBounds, Point: p, AABB: box}
}

func wrapTreeErr(err error) error {
	if err == nil {
		return nil
	}
	return &SpatialError{Kind: ErrTree, Inner: err}
}
