// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON implements [encoding/json.Marshaler] by encoding the
// tree as its [Octree.DumpList] result, so the JSON and text-dump
// views of a tree describe the identical walk.
func (t *Octree[T, Idx]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}

// LoadDumpList is the inverse of [Octree.DumpList]: it reconstructs a
// tree from a (possibly json.Unmarshal'd) dump, recreating every Leaf
// and Branch node at its recorded [NodePoint] depth and leaving Void
// nodes untouched. An empty or nil nodes list yields a fresh, empty
// tree.
func LoadDumpList[T any, Idx Index](nodes []DumpNode[T, Idx]) (*Octree[T, Idx], error) {
	t := NewOctree[T, Idx]()
	if len(nodes) == 0 {
		return t, nil
	}
	if err := t.loadDumpNode(t.root, nodes[0]); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Octree[T, Idx]) loadDumpNode(idx Idx, n DumpNode[T, Idx]) error {
	switch n.Kind {
	case "void":
		return nil
	case "leaf":
		_, err := t.SetLeaf(idx, n.Value)
		return err
	case "branch":
		children, err := t.Branch(idx)
		if err != nil {
			return err
		}
		if len(n.Children) != len(children) {
			return fmt.Errorf("octree: branch dump node has %d children, want %d", len(n.Children), len(children))
		}
		for i, child := range n.Children {
			if err := t.loadDumpNode(children[i], child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("octree: unknown dump node kind %q", n.Kind)
	}
}
