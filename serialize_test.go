// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gaissmai/octree"
)

// TestSerializeRoundTrip checks that a tree survives MarshalJSON followed
// by json.Unmarshal into DumpNodes and LoadDumpList, ending up with the
// identical leaf set.
func TestSerializeRoundTrip(t *testing.T) {
	t.Parallel()

	tr := octree.NewOctree[int, uint32]()
	root := tr.RootIdx()
	children, err := tr.Branch(root)
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	for i, c := range children {
		if i%2 == 0 {
			if _, err := tr.SetLeaf(c, i*10); err != nil {
				t.Fatalf("SetLeaf error: %v", err)
			}
		}
	}

	data, err := json.Marshal(tr)
	if err != nil {
		t.Fatalf("json.Marshal error: %v", err)
	}

	var nodes []octree.DumpNode[int, uint32]
	if err := json.Unmarshal(data, &nodes); err != nil {
		t.Fatalf("json.Unmarshal error: %v", err)
	}

	loaded, err := octree.LoadDumpList(nodes)
	if err != nil {
		t.Fatalf("LoadDumpList error: %v", err)
	}

	before := make(map[octree.NodePoint[uint32]]int)
	for np, v := range tr.LeafDFI() {
		before[np] = v
	}
	after := make(map[octree.NodePoint[uint32]]int)
	for np, v := range loaded.LeafDFI() {
		after[np] = v
	}
	if len(before) != len(after) {
		t.Fatalf("leaf count changed across round trip: %d vs %d", len(before), len(after))
	}
	for np, v := range before {
		if got, ok := after[np]; !ok || got != v {
			t.Errorf("round trip: %+v = (%d, %v), want (%d, true)", np, got, ok, v)
		}
	}
}

// TestLoadDumpListEmpty checks that loading an empty dump yields a fresh
// tree rather than an error.
func TestLoadDumpListEmpty(t *testing.T) {
	t.Parallel()

	tr, err := octree.LoadDumpList[int, uint32](nil)
	if err != nil {
		t.Fatalf("LoadDumpList(nil) error: %v", err)
	}
	node, ok := tr.Node(tr.RootIdx())
	if !ok || !node.IsVoid() {
		t.Errorf("LoadDumpList(nil) root is not void")
	}
}

// TestStringAndDebug checks that the text diagram and the flat debug
// dump both mention every leaf value and don't panic on an empty tree.
func TestStringAndDebug(t *testing.T) {
	t.Parallel()

	tr := octree.NewOctree[int, uint32]()
	if s := tr.String(); !strings.Contains(s, "Octree") {
		t.Errorf("String() on empty tree = %q, want it to mention Octree", s)
	}
	if s := tr.Debug(); s == "" {
		t.Errorf("Debug() on empty tree returned empty string")
	}

	root := tr.RootIdx()
	children, err := tr.Branch(root)
	if err != nil {
		t.Fatalf("Branch error: %v", err)
	}
	if _, err := tr.SetLeaf(children[3], 777); err != nil {
		t.Fatalf("SetLeaf error: %v", err)
	}

	s := tr.String()
	if !strings.Contains(s, "777") {
		t.Errorf("String() = %q, want it to mention leaf value 777", s)
	}
	d := tr.Debug()
	if !strings.Contains(d, "777") {
		t.Errorf("Debug() = %q, want it to mention leaf value 777", d)
	}
}
