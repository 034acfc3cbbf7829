// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package octant defines the 3-bit direction code used to name one of
// the eight children of an octree node, and the arithmetic to compose it
// with a point in a node's local grid.
package octant

import "fmt"

// Octant names one of the eight children of a node, or equivalently one
// of the eight sub-cubes of a cube, via the bit pattern (i<<2)|(j<<1)|k.
//
//	Lower           Upper
//	-------------   -------------     2 - 6     J
//	|000>0|100>4|   |010>2|110>6|   3 - 7 |     |
//	|-----|-----|   |-----|-----|   |   | 4     --- I
//	|001>1|101>5|   |011>3|111>7|   1 - 5      /
//	-------------   -------------             K
type Octant uint8

// All enumerates the eight octants in ascending value order.
var All = [8]Octant{0, 1, 2, 3, 4, 5, 6, 7}

// New packs three booleans into an Octant: i*4 | j*2 | k.
func New(i, j, k bool) Octant {
	var o Octant
	if i {
		o |= 4
	}
	if j {
		o |= 2
	}
	if k {
		o |= 1
	}
	return o
}

// I returns the bit-magnitude of the i component: 4 if set, 0 otherwise.
// Note this is not normalized to 0/1 — arithmetic that treats it as an
// axis offset must account for the shift itself.
func (o Octant) I() uint8 { return uint8(o) & 0b100 }

// J returns the bit-magnitude of the j component: 2 if set, 0 otherwise.
func (o Octant) J() uint8 { return uint8(o) & 0b010 }

// K returns the bit-magnitude of the k component: 1 if set, 0 otherwise.
func (o Octant) K() uint8 { return uint8(o) & 0b001 }

// Vector returns the (i,j,k) components as bit-magnitudes (0/4, 0/2, 0/1).
func (o Octant) Vector() [3]uint8 { return [3]uint8{o.I(), o.J(), o.K()} }

// Not returns the antipodal octant: the opposite corner across the
// parent's center.
func (o Octant) Not() Octant { return o ^ 0b111 }

// Valid reports whether o is one of the eight legal octant values.
func (o Octant) Valid() bool { return o <= 7 }

func (o Octant) String() string { return fmt.Sprintf("Octant(%d)", uint8(o)) }
