// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package testtree builds random trees and point sequences for the
// property tests in package octree, the way the teacher's
// internal/tests/random package drives its own fuzz-style table tests.
package testtree

import (
	"math/rand/v2"

	"github.com/gaissmai/octree"
)

// RandomPath returns a random Octant path of the given length, usable
// as a sequence of Branch/descend steps from a tree's root.
func RandomPath(rng *rand.Rand, depth int) []octree.Octant {
	path := make([]octree.Octant, depth)
	for i := range path {
		path[i] = octree.Octant(rng.IntN(8))
	}
	return path
}

// SetAtPath branches from root along path, setting a leaf with value v
// at the node path leads to, and returns that node's index and
// NodePoint.
func SetAtPath[T any, Idx octree.Index](t *octree.Octree[T, Idx], path []octree.Octant, v T) (Idx, octree.NodePoint[Idx], error) {
	idx := t.RootIdx()
	var np octree.NodePoint[Idx]
	for _, oct := range path {
		children, err := t.Branch(idx)
		if err != nil {
			return 0, np, err
		}
		idx = children[oct]
		np = np.Child(oct)
	}
	if _, err := t.SetLeaf(idx, v); err != nil {
		return 0, np, err
	}
	return idx, np, nil
}

// RandomLeaves populates t with n leaves of random int values at n
// independently random paths of the given depth, returning the values
// planted. Paths are regenerated on collision so every call plants
// exactly n leaves.
func RandomLeaves(rng *rand.Rand, t *octree.Octree[int, uint32], n, depth int) []int {
	values := make([]int, 0, n)
	for len(values) < n {
		path := RandomPath(rng, depth)
		// a path ending on (or running through) an existing leaf collides
		idx := t.RootIdx()
		for _, oct := range path {
			node, _ := t.Node(idx)
			children, ok := node.Branch()
			if !ok {
				break
			}
			idx = children[oct]
		}
		if node, _ := t.Node(idx); node.IsLeaf() {
			continue
		}
		v := rng.IntN(1 << 20)
		if _, _, err := SetAtPath[int, uint32](t, path, v); err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

// GrowRandom grows a fresh tree height times toward random octants and
// returns it.
func GrowRandom(rng *rand.Rand, height int) *octree.Octree[int, uint32] {
	t := octree.NewOctree[int, uint32]()
	for range height {
		oct := octree.Octant(rng.IntN(8))
		if _, err := t.Grow(oct); err != nil {
			panic(err)
		}
	}
	return t
}
