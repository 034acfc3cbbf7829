// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree_test

import (
	"testing"

	"github.com/gaissmai/octree"
)

// TestVoxelOctreeScenarios covers the two VoxelOctree concrete scenarios:
// growth direction toward an uncontained point, and that inserting twice
// at the same voxel displaces the prior payload.
func TestVoxelOctreeScenarios(t *testing.T) {
	t.Parallel()

	t.Run("GrowthDirection", func(t *testing.T) {
		t.Parallel()
		testGrowthDirection(t)
	})

	t.Run("RepeatedInsertDisplacesPayload", func(t *testing.T) {
		t.Parallel()
		testRepeatedInsertDisplacesPayload(t)
	})
}

// testGrowthDirection grows a unit-cube VoxelOctree toward a point lying
// outside it only on the X axis, and checks the resulting cube's exact
// origin and length, and that the old root lands at octant 4 (the
// negative-X child) of the new one.
func testGrowthDirection(t *testing.T) {
	v := octree.NewVoxelOctree[int, float64, uint32](1.0)
	oldRoot := v.Base().RootIdx()

	grew := v.GrowToContain([3]float64{-0.5, 0.5, 0.5})
	if !grew {
		t.Fatal("GrowToContain reported no growth")
	}

	wantAABB := octree.NewAABB([3]float64{-1, 0, 0}, 2)
	if got := v.AABB(); got != wantAABB {
		t.Errorf("AABB() = %+v, want %+v", got, wantAABB)
	}
	if v.Height() != 1 {
		t.Errorf("Height() = %d, want 1", v.Height())
	}

	newRoot := v.Base().RootIdx()
	node, ok := v.Base().Node(newRoot)
	if !ok || !node.IsBranch() {
		t.Fatalf("new root is not a branch")
	}
	children, _ := node.Branch()
	if children[4] != oldRoot {
		t.Errorf("children[4] = %d, want old root %d", children[4], oldRoot)
	}
}

// testRepeatedInsertDisplacesPayload inserts at the same point twice and
// checks the second call reports the first payload as displaced.
func testRepeatedInsertDisplacesPayload(t *testing.T) {
	v := octree.NewVoxelOctree[string, float64, uint32](1.0)
	p := [3]float64{0.25, 0.25, 0.25}

	displaced, had, err := v.InsertVoxelAt(p, "first")
	if err != nil {
		t.Fatalf("first InsertVoxelAt error: %v", err)
	}
	if had {
		t.Fatalf("first InsertVoxelAt reported a displaced payload %q", displaced)
	}

	displaced, had, err = v.InsertVoxelAt(p, "second")
	if err != nil {
		t.Fatalf("second InsertVoxelAt error: %v", err)
	}
	if !had || displaced != "first" {
		t.Errorf("second InsertVoxelAt displaced = (%q, %v), want (\"first\", true)", displaced, had)
	}

	_, idx, node, _, err := v.NodeContaining(p)
	if err != nil {
		t.Fatalf("NodeContaining error: %v", err)
	}
	leaf, ok := node.Leaf()
	if !ok || leaf != "second" {
		t.Errorf("NodeContaining(%v) leaf at %d = %q, want \"second\"", p, idx, leaf)
	}
}
