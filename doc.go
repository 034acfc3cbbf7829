// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package octree provides a generic, arena-backed octree for spatial
// indexing: recursively partitioning a cubic volume into eight equal
// sub-cubes and storing arbitrary leaf payloads at arbitrary depths.
//
// Octree[T, Idx] is the pointer-free tree core: every reference between
// nodes is an index into one of three internal arenas (proxies,
// branches, leaves), never a pointer, so the whole tree can be
// relocated, compacted or grown without invalidating anything but the
// indices a caller explicitly asked to be remapped. Octree supports
// branch/void/set_leaf mutation, grow (root extension), graft (splicing
// another tree in), merge_branch/sample_branch (destructive and
// non-destructive subtree reduction), defragmentation/compression, and
// depth-first iteration over leaves by octant order.
//
// VoxelOctree[T, Real, Idx] wraps an Octree with an axis-aligned
// bounding box (AABB[Real]) and a fixed voxel size, adding
// grow-to-contain, node-containing-point, and insert-at-point: the
// operations a caller uses to voxelize a stream of (point, payload)
// pairs into the tree without tracking tree geometry itself.
//
// Octree is not safe for concurrent readers and writers; a tree has
// exactly one owner at a time. There is no persistence format and no
// on-disk layout — [Octree.Fprint] and [Octree.DumpList] are debug and
// inspection aids only.
package octree
