// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

// Cloner is an interface that enables deep cloning of leaf payloads of
// type T. If a payload implements Cloner[T], [Octree.CloneLeaves] uses
// its Clone method instead of a shallow Go value copy.
type Cloner[T any] interface {
	Clone() T
}
