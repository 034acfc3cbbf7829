// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree_test

import (
	"testing"

	"github.com/gaissmai/octree"
)

// TestTreeScenarios covers the Octree-level concrete scenarios: voiding a
// branch restores it to Void, defragment remaps indices while preserving
// lookups, and NodeAt queried past the tree's actual depth stops at the
// deepest real ancestor instead of failing.
func TestTreeScenarios(t *testing.T) {
	t.Parallel()

	t.Run("BranchThenVoidRestoresVoid", func(t *testing.T) {
		t.Parallel()
		testBranchThenVoidRestoresVoid(t)
	})

	t.Run("DefragmentRemapsIndices", func(t *testing.T) {
		t.Parallel()
		testDefragmentRemapsIndices(t)
	})

	t.Run("NodeAtBeyondDepthReturnsDeepestAncestor", func(t *testing.T) {
		t.Parallel()
		testNodeAtBeyondDepthReturnsDeepestAncestor(t)
	})
}

func testBranchThenVoidRestoresVoid(t *testing.T) {
	tr := octree.NewOctree[int, uint32]()
	root := tr.RootIdx()
	before := tr.ProxyCount()

	children, err := tr.Branch(root)
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	for _, c := range children {
		if !tr.IsInit(c) {
			t.Fatalf("child %d not initialized after Branch", c)
		}
	}

	reclaimed, err := tr.Void(root)
	if err != nil {
		t.Fatalf("Void error: %v", err)
	}
	if len(reclaimed) != 0 {
		t.Errorf("Void(root) reclaimed %v leaves, want none", reclaimed)
	}

	node, ok := tr.Node(root)
	if !ok || !node.IsVoid() {
		t.Fatalf("root is not void after Branch then Void")
	}
	if tr.ProxyCount() != before {
		t.Errorf("ProxyCount() = %d after round trip, want %d", tr.ProxyCount(), before)
	}
}

// testDefragmentRemapsIndices fragments the proxy arena by voiding an
// earlier-allocated subtree, then checks that a later-planted leaf is
// still locatable by its NodePoint after Defragment, regardless of
// whatever index it ends up at.
func testDefragmentRemapsIndices(t *testing.T) {
	tr := octree.NewOctree[int, uint32]()
	root := tr.RootIdx()
	children, err := tr.Branch(root)
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}

	// plant and then discard a leaf, fragmenting the proxy arena
	if _, err := tr.SetLeaf(children[0], -1); err != nil {
		t.Fatalf("SetLeaf error: %v", err)
	}
	if _, err := tr.Void(children[0]); err != nil {
		t.Fatalf("Void error: %v", err)
	}

	// the leaf whose survival we check
	if _, err := tr.SetLeaf(children[5], 99); err != nil {
		t.Fatalf("SetLeaf error: %v", err)
	}
	np := octree.NodePoint[uint32]{}.Child(5)

	beforeIdx := tr.NodeAt(np)
	tr.Defragment()
	afterIdx := tr.NodeAt(np)

	v, err := tr.LeafAt(afterIdx)
	if err != nil {
		t.Fatalf("LeafAt after Defragment error: %v", err)
	}
	if v != 99 {
		t.Errorf("LeafAt(NodeAt(%+v)) after Defragment = %d, want 99", np, v)
	}
	t.Logf("index before Defragment = %d, after = %d", beforeIdx, afterIdx)
}

// testNodeAtBeyondDepthReturnsDeepestAncestor plants a leaf at depth 2
// and queries NodeAt with a NodePoint several levels deeper along the
// same path: since the leaf is not a Branch, the walk must stop there
// rather than continuing (or failing).
func testNodeAtBeyondDepthReturnsDeepestAncestor(t *testing.T) {
	tr := octree.NewOctree[int, uint32]()
	root := tr.RootIdx()

	c1, err := tr.Branch(root)
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	c2, err := tr.Branch(c1[3])
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	leafIdx := c2[6]
	if _, err := tr.SetLeaf(leafIdx, 7); err != nil {
		t.Fatalf("SetLeaf error: %v", err)
	}

	np := octree.NodePoint[uint32]{}.Child(3).Child(6)
	if got := tr.NodeAt(np); got != leafIdx {
		t.Fatalf("NodeAt at actual depth = %d, want %d", got, leafIdx)
	}

	deepNp := np
	for range 3 {
		deepNp = deepNp.Child(0)
	}
	if deepNp.D != np.D+3 {
		t.Fatalf("deepNp.D = %d, want %d", deepNp.D, np.D+3)
	}

	got := tr.NodeAt(deepNp)
	if got != leafIdx {
		t.Errorf("NodeAt(beyond actual depth) = %d, want deepest ancestor %d", got, leafIdx)
	}
}

// TestUpcastOctree checks that converting to a wider Idx type preserves
// every leaf's NodePoint and value.
func TestUpcastOctree(t *testing.T) {
	t.Parallel()

	tr := octree.NewOctree[string, uint8]()
	root := tr.RootIdx()
	children, err := tr.Branch(root)
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	for i, c := range children {
		if _, err := tr.SetLeaf(c, string(rune('a'+i))); err != nil {
			t.Fatalf("SetLeaf error: %v", err)
		}
	}

	before := make(map[octree.NodePoint[uint8]]string)
	for np, v := range tr.LeafDFI() {
		before[np] = v
	}

	up := octree.UpcastOctree[string, uint8, uint32](tr)

	after := make(map[octree.NodePoint[uint32]]string)
	for np, v := range up.LeafDFI() {
		after[np] = v
	}

	if len(before) != len(after) {
		t.Fatalf("leaf count changed across upcast: %d vs %d", len(before), len(after))
	}
	for np, v := range before {
		wideNp := octree.NodePoint[uint32]{X: uint32(np.X), Y: uint32(np.Y), Z: uint32(np.Z), D: uint32(np.D)}
		if got, ok := after[wideNp]; !ok || got != v {
			t.Errorf("after upcast, %+v = (%q, %v), want (%q, true)", wideNp, got, ok, v)
		}
	}
}

// TestTreeSlice checks a subtree view reports the right root, height and
// leaf set relative to its own root.
func TestTreeSlice(t *testing.T) {
	t.Parallel()

	tr := octree.NewOctree[int, uint32]()
	root := tr.RootIdx()
	children, err := tr.Branch(root)
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	grandchildren, err := tr.Branch(children[2])
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	if _, err := tr.SetLeaf(grandchildren[5], 11); err != nil {
		t.Fatalf("SetLeaf error: %v", err)
	}

	slice, err := tr.Slice(children[2])
	if err != nil {
		t.Fatalf("Slice error: %v", err)
	}
	if slice.RootIdx() != children[2] {
		t.Errorf("RootIdx() = %d, want %d", slice.RootIdx(), children[2])
	}
	if slice.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", slice.Depth())
	}
	if slice.Height() != 1 {
		t.Errorf("Height() = %d, want 1", slice.Height())
	}

	var found bool
	for np, v := range slice.LeafDFI() {
		if np == (octree.NodePoint[uint32]{}.Child(5)) && v == 11 {
			found = true
		}
	}
	if !found {
		t.Errorf("slice.LeafDFI() did not yield leaf 11 at relative octant 5")
	}
}
