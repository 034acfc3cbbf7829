// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree_test

import (
	"errors"
	"testing"

	"github.com/gaissmai/octree"
)

// TestTreeErrorKinds checks that the accessor and mutator error paths
// return the documented ErrorKind, matchable via errors.Is against a
// bare sentinel value.
func TestTreeErrorKinds(t *testing.T) {
	t.Parallel()

	tr := octree.NewOctree[int, uint32]()

	_, err := tr.LeafAt(999)
	requireTreeErrKind(t, err, octree.ErrInvalidIndex)

	root := tr.RootIdx()
	if _, err := tr.SetLeaf(root, 1); err != nil {
		t.Fatalf("SetLeaf error: %v", err)
	}
	_, err = tr.Branch(root)
	requireTreeErrKind(t, err, octree.ErrBranchCollision)

	err = tr.Graft(octree.NewOctree[int, uint32](), root)
	requireTreeErrKind(t, err, octree.ErrNotABranch)
}

func requireTreeErrKind(t *testing.T, err error, want octree.ErrorKind) {
	t.Helper()
	var treeErr *octree.TreeError
	if !errors.As(err, &treeErr) {
		t.Fatalf("error %v is not a *TreeError", err)
	}
	if treeErr.Kind != want {
		t.Errorf("error kind = %v, want %v", treeErr.Kind, want)
	}
	if !errors.Is(err, &octree.TreeError{Kind: want}) {
		t.Errorf("errors.Is against a bare sentinel of kind %v failed", want)
	}
}

// TestSpatialErrorWrapping checks that a point falling outside a
// VoxelOctree's AABB surfaces as a SpatialError of kind
// ErrPointOutOfBounds.
func TestSpatialErrorWrapping(t *testing.T) {
	t.Parallel()

	v := octree.NewVoxelOctree[int, float64, uint32](1.0)

	_, _, _, _, err := v.NodeContaining([3]float64{5, 5, 5})
	var spatialErr *octree.SpatialError
	if !errors.As(err, &spatialErr) {
		t.Fatalf("NodeContaining out-of-bounds error = %v, not a *SpatialError", err)
	}
	if spatialErr.Kind != octree.ErrPointOutOfBounds {
		t.Errorf("SpatialError.Kind = %v, want ErrPointOutOfBounds", spatialErr.Kind)
	}
}
