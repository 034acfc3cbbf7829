// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree_test

import (
	"errors"
	"testing"

	"github.com/gaissmai/octree"
)

// TestGraft checks that grafting a separately built tree onto a branch
// node splices in every leaf of the donor, leaves the donor empty, and
// that grafting onto anything but a branch fails.
func TestGraft(t *testing.T) {
	t.Parallel()

	t.Run("SplicesDonorLeaves", func(t *testing.T) {
		t.Parallel()
		testGraftSplicesDonorLeaves(t)
	})

	t.Run("RequiresBranchTarget", func(t *testing.T) {
		t.Parallel()
		testGraftRequiresBranchTarget(t)
	})
}

func testGraftSplicesDonorLeaves(t *testing.T) {
	host := octree.NewOctree[int, uint32]()
	hostChildren, err := host.Branch(host.RootIdx())
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	target := hostChildren[3]
	if _, err := host.Branch(target); err != nil {
		t.Fatalf("Branch error: %v", err)
	}

	donor := octree.NewOctree[int, uint32]()
	donorChildren, err := donor.Branch(donor.RootIdx())
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	if _, err := donor.SetLeaf(donorChildren[0], 100); err != nil {
		t.Fatalf("SetLeaf error: %v", err)
	}
	if _, err := donor.SetLeaf(donorChildren[7], 200); err != nil {
		t.Fatalf("SetLeaf error: %v", err)
	}

	if err := host.Graft(donor, target); err != nil {
		t.Fatalf("Graft error: %v", err)
	}

	if donor.ProxyCount() != 0 || donor.LeafCount() != 0 {
		t.Errorf("donor not emptied: proxies=%d leaves=%d", donor.ProxyCount(), donor.LeafCount())
	}

	got := make(map[int]bool)
	for _, v := range host.LeafDFI() {
		got[v] = true
	}
	if !got[100] || !got[200] {
		t.Errorf("host leaves after graft = %v, want both 100 and 200 present", got)
	}
}

func testGraftRequiresBranchTarget(t *testing.T) {
	host := octree.NewOctree[int, uint32]()
	donor := octree.NewOctree[int, uint32]()

	err := host.Graft(donor, host.RootIdx())
	if err == nil {
		t.Fatal("Graft onto a Void root succeeded, want ErrNotABranch")
	}
	var treeErr *octree.TreeError
	if !errors.As(err, &treeErr) || treeErr.Kind != octree.ErrNotABranch {
		t.Errorf("Graft error = %v, want ErrNotABranch", err)
	}
}
