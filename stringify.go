// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package octree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// String returns a hierarchical tree diagram of every node, as a
// wrapper for [Octree.Fprint]. If Fprint returns an error, String
// panics; writing to a [strings.Builder] never does.
func (t *Octree[T, Idx]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// MarshalText implements [encoding.TextMarshaler], a wrapper for
// [Octree.Fprint].
func (t *Octree[T, Idx]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Fprint writes a hierarchical diagram of the tree to w: one header
// line naming the root and arena sizes, then every Void, Leaf and
// Branch node visited depth-first in Octant order.
//
//	Octree (root: 3, 1 branches, 2 leaves, 9 proxies)
//	<B @ 3>
//	├─ <V @ 1>
//	├─ <V @ 2>
//	├─ <L @ 0> 42
//	├─ <V @ 4>
//	├─ <V @ 5>
//	├─ <V @ 6>
//	├─ <V @ 7>
//	└─ <L @ 8> 7
func (t *Octree[T, Idx]) Fprint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Octree (root: %v, %d branches, %d leaves, %d proxies)\n",
		t.root, t.branches.Len(), t.leaves.Len(), t.proxies.Len()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", t.nodeLabel(t.root)); err != nil {
		return err
	}
	return t.fprintChildren(w, t.root, "")
}

func (t *Octree[T, Idx]) nodeLabel(idx Idx) string {
	p, _ := t.proxies.Get(idxToInt(idx))
	switch p.kind {
	case kindLeaf:
		v, _ := t.leaves.Get(idxToInt(p.data))
		return fmt.Sprintf("<L @ %v> %v", idx, v)
	case kindBranch:
		return fmt.Sprintf("<B @ %v>", idx)
	default:
		return fmt.Sprintf("<V @ %v>", idx)
	}
}

// fprintChildren prints idx's children, if any, each glyph-prefixed
// and followed by its own children recursively.
func (t *Octree[T, Idx]) fprintChildren(w io.Writer, idx Idx, pad string) error {
	p, _ := t.proxies.Get(idxToInt(idx))
	if p.kind != kindBranch {
		return nil
	}

	glyphe, spacer := "├─ ", "│  "
	b := t.branches.MustGet(idxToInt(p.data))
	for i, c := range b {
		if i == len(b)-1 {
			glyphe, spacer = "└─ ", "   "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", pad, glyphe, t.nodeLabel(c)); err != nil {
			return err
		}
		if err := t.fprintChildren(w, c, pad+spacer); err != nil {
			return err
		}
	}
	return nil
}
