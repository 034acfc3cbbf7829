// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package stablevec implements a growable container whose indices stay
// valid across pushes and removals, reusing freed slots instead of
// shifting everything after them. It is the arena primitive the octree
// package builds its proxy, branch and leaf stores on.
package stablevec

import (
	"iter"
	"unsafe"

	"github.com/bits-and-blooms/bitset"

	"github.com/gaissmai/octree/internal/value"
)

// Vec is a vector of T with permanent indices: removing an element frees
// its slot for reuse by a later Push, but never relocates a surviving
// element. The only operation that moves surviving elements is
// [Vec.Defragment] (and [Vec.Compress], which defragments then shrinks),
// and both report every relocation so callers can rewrite any indices
// they cached.
//
// The zero value is not usable; construct with [New] or [WithCapacity].
type Vec[T any] struct {
	data         []T
	flags        *bitset.BitSet
	initCount    int
	farthestInit int // -1 when empty
}

// New returns an empty Vec.
func New[T any]() *Vec[T] {
	return &Vec[T]{flags: bitset.New(0), farthestInit: -1}
}

// WithCapacity returns an empty Vec with room for cap elements without
// reallocation.
func WithCapacity[T any](cap int) *Vec[T] {
	v := New[T]()
	if cap > 0 {
		v.growTo(cap)
	}
	return v
}

// minNonZeroCap mirrors the standard allocator's RawVec growth floor: small
// elements get a larger minimum capacity since the bookkeeping overhead
// (the bitset word) otherwise dominates.
func minNonZeroCap[T any]() int {
	var zero T
	sz := int(unsafe.Sizeof(zero))
	switch {
	case sz <= 1:
		return 8
	case sz <= 1024:
		return 4
	default:
		return 1
	}
}

// Len reports the number of initialized elements.
func (v *Vec[T]) Len() int { return v.initCount }

// Cap reports the current backing capacity.
func (v *Vec[T]) Cap() int { return len(v.data) }

// SpareCapacity reports how many more elements can be pushed without
// reallocation.
func (v *Vec[T]) SpareCapacity() int { return len(v.data) - v.initCount }

// IsInit reports whether idx names an initialized slot.
func (v *Vec[T]) IsInit(idx int) bool {
	return idx >= 0 && idx < len(v.data) && v.flags.Test(uint(idx))
}

// IsFragmented reports whether some uninitialized slot precedes the last
// initialized one, i.e. whether [Vec.Defragment] would have work to do.
func (v *Vec[T]) IsFragmented() bool {
	z, ok := v.flags.NextClear(0)
	if !ok {
		return false
	}
	return int(z) < v.farthestInit
}

// Get returns the value at idx and whether idx was initialized.
func (v *Vec[T]) Get(idx int) (T, bool) {
	var zero T
	if !v.IsInit(idx) {
		return zero, false
	}
	return v.data[idx], true
}

// GetPtr returns a pointer to the value at idx for in-place mutation, or
// nil if idx is uninitialized or out of range.
func (v *Vec[T]) GetPtr(idx int) (*T, bool) {
	if !v.IsInit(idx) {
		return nil, false
	}
	return &v.data[idx], true
}

// MustGet returns a pointer to the value at idx. It panics if idx is
// uninitialized; callers use it only where an invariant already
// guarantees the slot is populated.
func (v *Vec[T]) MustGet(idx int) *T {
	p, ok := v.GetPtr(idx)
	if !ok {
		panic("stablevec: access of uninitialized slot")
	}
	return p
}

func (v *Vec[T]) setAt(idx int, val T) {
	v.data[idx] = val
	if !v.flags.Test(uint(idx)) {
		v.flags.Set(uint(idx))
		v.initCount++
		if idx > v.farthestInit {
			v.farthestInit = idx
		}
	}
}

// NextPushIndex reports the slot the next Push would land in, without
// mutating the vector.
func (v *Vec[T]) NextPushIndex() int {
	if v.SpareCapacity() == 0 {
		return len(v.data)
	}
	if z, ok := v.flags.NextClear(0); ok && int(z) < len(v.data) {
		return int(z)
	}
	return len(v.data)
}

// Push writes val to the first uninitialized slot, growing the backing
// storage if none is free, and returns the slot's permanent index.
func (v *Vec[T]) Push(val T) int {
	idx := v.NextPushIndex()
	if idx >= len(v.data) {
		v.Reserve(1)
		idx = v.NextPushIndex()
	}
	v.setAt(idx, val)
	return idx
}

// Set writes val at idx, returning the previously-stored value and true
// if idx was already initialized. It does not grow the vector: writing
// beyond the current capacity is a silent no-op reporting (zero, false),
// matching the permanent-index contract (only Reserve/Push extend it).
func (v *Vec[T]) Set(idx int, val T) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(v.data) {
		return zero, false
	}
	if v.flags.Test(uint(idx)) {
		old := v.data[idx]
		v.data[idx] = val
		return old, true
	}
	v.setAt(idx, val)
	return zero, false
}

// Remove uninitializes idx and returns its prior value. The slot becomes
// reusable by the next Push.
func (v *Vec[T]) Remove(idx int) (T, bool) {
	var zero T
	if !v.IsInit(idx) {
		return zero, false
	}
	old := v.data[idx]
	v.data[idx] = zero
	v.flags.Clear(uint(idx))
	v.initCount--
	if v.farthestInit == idx {
		v.farthestInit = v.recomputeFarthest()
	}
	return old, true
}

func (v *Vec[T]) recomputeFarthest() int {
	for i := len(v.data) - 1; i >= 0; i-- {
		if v.flags.Test(uint(i)) {
			return i
		}
	}
	return -1
}

// Swap exchanges both the values and initialization state of a and b.
func (v *Vec[T]) Swap(a, b int) {
	v.data[a], v.data[b] = v.data[b], v.data[a]
	fa, fb := v.flags.Test(uint(a)), v.flags.Test(uint(b))
	if fb {
		v.flags.Set(uint(a))
	} else {
		v.flags.Clear(uint(a))
	}
	if fa {
		v.flags.Set(uint(b))
	} else {
		v.flags.Clear(uint(b))
	}
	if a == v.farthestInit || b == v.farthestInit {
		v.farthestInit = v.recomputeFarthest()
	}
}

// Clear drops every initialized value; capacity is retained.
func (v *Vec[T]) Clear() {
	clear(v.data)
	v.flags.ClearAll()
	v.initCount = 0
	v.farthestInit = -1
}

func (v *Vec[T]) growTo(newCap int) {
	if newCap <= len(v.data) {
		return
	}
	nd := make([]T, newCap)
	copy(nd, v.data)
	v.data = nd
	v.flags.Set(uint(newCap - 1)) // grow the bitset's backing words
	v.flags.Clear(uint(newCap - 1))
}

// growAmortized grows geometrically: double the initialized count,
// respecting both the request and a per-type minimum floor.
func (v *Vec[T]) growAmortized(additional int) {
	newCap := len(v.data) + additional
	if c := v.initCount * 2; c > newCap {
		newCap = c
	}
	if m := minNonZeroCap[T](); m > newCap {
		newCap = m
	}
	v.growTo(newCap)
}

// Reserve ensures at least additional more elements can be pushed without
// reallocation, growing geometrically if needed.
func (v *Vec[T]) Reserve(additional int) {
	amt := additional - v.SpareCapacity()
	if amt <= 0 {
		return
	}
	v.growAmortized(amt)
}

// ReserveExact ensures at least additional more elements can be pushed
// without reallocation, growing by exactly the amount needed.
func (v *Vec[T]) ReserveExact(additional int) {
	amt := additional - v.SpareCapacity()
	if amt <= 0 {
		return
	}
	v.growTo(len(v.data) + amt)
}

// Defragment partitions the vector so every initialized slot occupies a
// contiguous prefix [0, Len()), moving the highest-indexed initialized
// values down into the lowest free slots. It returns every relocation
// as oldIdx -> newIdx so callers can rewrite references they cached.
func (v *Vec[T]) Defragment() map[int]int {
	res := map[int]int{}
	if v.initCount == 0 || v.farthestInit < 0 {
		return res
	}
	fz, ok := v.flags.NextClear(0)
	if !ok || int(fz) >= len(v.data) {
		return res // already packed
	}
	firstUninit := int(fz)
	i := v.farthestInit
	for i > firstUninit {
		if v.flags.Test(uint(i)) {
			v.data[firstUninit] = v.data[i]
			var zero T
			v.data[i] = zero
			v.flags.Set(uint(firstUninit))
			v.flags.Clear(uint(i))
			res[i] = firstUninit
			nz, ok := v.flags.NextClear(uint(firstUninit + 1))
			if !ok || int(nz) >= i {
				break
			}
			firstUninit = int(nz)
		}
		i--
	}
	v.farthestInit = v.initCount - 1
	return res
}

// Compress defragments, then shrinks the backing allocation to exactly
// Len() elements.
func (v *Vec[T]) Compress() map[int]int {
	res := v.Defragment()
	v.data = append(v.data[:0:0], v.data[:v.initCount]...)
	return res
}

// ExtendFrom moves every initialized slot of other into v, returning the
// translation from other's old index to the new index in v. other is
// left empty.
func (v *Vec[T]) ExtendFrom(other *Vec[T]) map[int]int {
	res := map[int]int{}
	if other.farthestInit < 0 {
		return res
	}
	v.ReserveExact(other.Len())
	for i := 0; i <= other.farthestInit; i++ {
		if other.flags.Test(uint(i)) {
			res[i] = v.Push(other.data[i])
		}
	}
	other.Clear()
	return res
}

// All iterates every initialized value in ascending index order.
func (v *Vec[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i <= v.farthestInit; i++ {
			if v.flags.Test(uint(i)) {
				if !yield(v.data[i]) {
					return
				}
			}
		}
	}
}

// Enumerate iterates (index, value) pairs for every initialized slot in
// ascending index order.
func (v *Vec[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i <= v.farthestInit; i++ {
			if v.flags.Test(uint(i)) {
				if !yield(i, v.data[i]) {
					return
				}
			}
		}
	}
}

// IsZST reports whether T is a zero-sized type, per [value.IsZST]. Arenas
// over zero-sized payloads (such as a presence-only leaf marker) still
// pay for the initialization bitmap but never copy any backing bytes.
func IsZST[T any]() bool { return value.IsZST[T]() }
