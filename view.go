// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

// Node is a read-only view of a proxy at the moment it was taken: its
// index, and the variant (Void/Leaf/Branch) its proxy held then. A Node
// does not track later mutation of the tree; re-fetch via [Octree.Node]
// if the tree may have changed underneath it.
type Node[T any, Idx Index] struct {
	tree  *Octree[T, Idx]
	index Idx
	p     proxy[Idx]
}

// Node returns a read view of the proxy at index, or false if index is
// uninitialized.
func (t *Octree[T, Idx]) Node(index Idx) (Node[T, Idx], bool) {
	p, ok := t.proxies.Get(idxToInt(index))
	if !ok {
		return Node[T, Idx]{}, false
	}
	return Node[T, Idx]{tree: t, index: index, p: p}, true
}

// Index returns the node's own index.
func (n Node[T, Idx]) Index() Idx { return n.index }

// IsVoid, IsLeaf and IsBranch report which variant the node held when
// the view was taken.
func (n Node[T, Idx]) IsVoid() bool   { return n.p.kind == kindVoid }
func (n Node[T, Idx]) IsLeaf() bool   { return n.p.kind == kindLeaf }
func (n Node[T, Idx]) IsBranch() bool { return n.p.kind == kindBranch }

// Leaf returns the node's payload, if it held one.
func (n Node[T, Idx]) Leaf() (T, bool) {
	var zero T
	if n.p.kind != kindLeaf {
		return zero, false
	}
	v, _ := n.tree.leaves.Get(idxToInt(n.p.data))
	return v, true
}

// Branch returns the node's eight child indices, if it held a branch.
func (n Node[T, Idx]) Branch() ([8]Idx, bool) {
	if n.p.kind != kindBranch {
		return [8]Idx{}, false
	}
	return [8]Idx(*n.tree.branches.MustGet(idxToInt(n.p.data))), true
}

// NodeMut is a handle for structural mutation of a single node, by
// index, through the tree it was taken from.
type NodeMut[T any, Idx Index] struct {
	tree  *Octree[T, Idx]
	index Idx
}

// NodeMut returns a mutable handle for index, or false if index is
// uninitialized.
func (t *Octree[T, Idx]) NodeMut(index Idx) (NodeMut[T, Idx], bool) {
	if !t.proxies.IsInit(idxToInt(index)) {
		return NodeMut[T, Idx]{}, false
	}
	return NodeMut[T, Idx]{tree: t, index: index}, true
}

// Index returns the handle's node index.
func (m NodeMut[T, Idx]) Index() Idx { return m.index }

// Node returns a read-only snapshot of the handle's current state.
func (m NodeMut[T, Idx]) Node() Node[T, Idx] {
	n, _ := m.tree.Node(m.index)
	return n
}

// Split converts a Void node into a Branch, same as [Octree.Branch]; it
// is a no-op returning the existing children if the node is already a
// Branch, and fails with ErrBranchCollision if it is a Leaf.
func (m NodeMut[T, Idx]) Split() ([8]Idx, error) {
	return m.tree.Branch(m.index)
}

// LeafDataOrInsertWith returns a mutable pointer to the node's leaf
// payload, calling f to produce one and installing it if the node is
// currently Void. Fails with ErrNotALeaf if the node is a Branch: unlike
// [Octree.SetLeaf], this never destroys an existing subtree.
func (m NodeMut[T, Idx]) LeafDataOrInsertWith(f func() T) (*T, error) {
	p, ok := m.tree.proxies.Get(idxToInt(m.index))
	if !ok {
		return nil, invalidIndexErr(m.index)
	}
	switch p.kind {
	case kindLeaf:
		return m.tree.leaves.MustGet(idxToInt(p.data)), nil
	case kindVoid:
		v := f()
		li := m.tree.leaves.Push(v)
		tp := m.tree.proxies.MustGet(idxToInt(m.index))
		tp.kind = kindLeaf
		tp.data = intToIdx[Idx](li)
		return m.tree.leaves.MustGet(li), nil
	default:
		return nil, notALeafErr(m.index)
	}
}
