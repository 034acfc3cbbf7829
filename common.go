// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

// noCopy is embedded in Octree so `go vet`'s -copylocks checker flags a
// value copy (which would alias the same arenas from two struct values,
// a near-certain bug given Octree's arena-of-indices representation).
type noCopy struct{}

// Lock and Unlock are no-ops; their only purpose is to give noCopy a
// Locker-shaped method set that -copylocks recognizes.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
