// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import "fmt"

// Tree is a region quadtree spatial index over items of type T.
//
// The zero value is not usable; construct a Tree with New.
type Tree[T Item] struct {
	root *region[T]
	cfg  *config
	// strays holds the entries whose indexed box is not inside the
	// root region. They are filtered on every window query.
	strays []entry[T]
	// n is the number of items inserted since construction or the
	// last Clear.
	n int
}

// Stats summarizes the shape of a Tree.
type Stats struct {
	// Nodes is the total number of regions, including the root.
	Nodes int
	// Leaves is the number of regions without quadrants.
	Leaves int
	// Depth is the depth of the deepest region. A tree which has never
	// subdivided has depth zero.
	Depth int
	// Items is the number of items stored directly in leaves.
	Items int
	// Straddlers is the number of items held in the straddling lists of
	// internal regions. It is always zero for a point tree.
	Straddlers int
	// Strays is the number of items lying, wholly or partly, outside
	// the tree's bounds.
	Strays int
}

// New creates an empty Tree covering bounds.
//
// Without options the tree is a bounded tree with a maximum depth of
// DefaultMaxDepth, DefaultMaxChildren items per leaf and exact
// bisection. Panics if MaxDepth is negative or MaxChildren is less than
// one.
//
// Bounds which are not well-formed (NaN or infinite components,
// negative width or height) are replaced by the zero Rect, so that an
// index over an empty or undefined dataset can still be built and
// queried. Zero-area bounds are legal.
func New[T Item](bounds Rect, opts ...Option) *Tree[T] {
	cfg := newConfig(opts)
	b := boxOf(bounds)
	if !b.valid() {
		b = box{}
	}
	return &Tree[T]{
		root: newRegion[T](b, 0, cfg),
		cfg:  cfg,
	}
}

// Bounds returns the rectangle covered by the root region.
func (t *Tree[T]) Bounds() Rect {
	return t.root.box.rect()
}

// Bounded reports whether t stores bounded items rather than points.
func (t *Tree[T]) Bounded() bool {
	return t.cfg.bounded
}

// MaxDepth returns the depth beyond which regions do not subdivide.
func (t *Tree[T]) MaxDepth() int {
	return t.cfg.maxDepth
}

// MaxChildren returns the number of items a leaf holds before it
// subdivides.
func (t *Tree[T]) MaxChildren() int {
	return t.cfg.maxChildren
}

// Len returns the number of items inserted since the tree was created
// or last cleared.
func (t *Tree[T]) Len() int {
	return t.n
}

// Insert adds an item to the tree.
//
// Panics if the item's extent is not well-formed (see Rect). Items
// outside the tree's bounds are accepted and remain searchable.
func (t *Tree[T]) Insert(item T) {
	e := t.entry(item)
	if t.root.box.contains(&e.box) {
		t.root.insert(e)
	} else {
		t.strays = append(t.strays, e)
	}
	t.n++
}

// InsertAll adds items to the tree in order, as if by calling Insert
// once per item.
func (t *Tree[T]) InsertAll(items ...T) {
	for i := range items {
		t.Insert(items[i])
	}
}

func (t *Tree[T]) entry(item T) entry[T] {
	r := item.Extent()
	b := boxOf(r)
	if !b.valid() {
		fmtPanic("invalid item extent %s", r)
	}
	if !t.cfg.bounded {
		b = pointBox(r.X, r.Y)
	}
	return entry[T]{box: b, item: item}
}

// Clear removes every item and every region below the root, leaving a
// single empty leaf over the original bounds. Clearing an empty tree
// is a no-op.
func (t *Tree[T]) Clear() {
	t.root.clear()
	t.strays = nil
	t.n = 0
}

// Retrieve returns the items stored in the leaf whose cell contains the
// origin of item's extent, plus, in a bounded tree, every item
// straddling a quadrant boundary on the path down to that leaf.
//
// Items lying outside the tree's bounds belong to no cell, so, like the
// straddlers of the root, they are returned by every call.
//
// Retrieve is an approximate, same-cell query: items in neighbouring
// cells are not returned even if they overlap item. Use
// RetrieveInBounds for an exact window query. The returned slice is
// freshly allocated.
func (t *Tree[T]) Retrieve(item T) []T {
	r := item.Extent()
	b := pointBox(r.X, r.Y)
	out := t.root.retrieve(&b, make([]T, 0, len(t.strays)))
	return appendItems(out, t.strays)
}

// RetrieveInBounds returns every item whose indexed extent overlaps q,
// each exactly once, in no particular order. Touching edges count as
// overlapping. An empty slice is returned if q is not well-formed.
//
// The returned slice is freshly allocated and remains valid after
// later calls, but the items in it are those stored in the tree.
func (t *Tree[T]) RetrieveInBounds(q Rect) []T {
	r := make([]T, 0)
	qb := boxOf(q)
	if !qb.valid() {
		return r
	}
	candidates := t.root.collect(&qb, nil)
	candidates = append(candidates, t.strays...)
	for i := range candidates {
		if candidates[i].box.intersects(&qb) {
			r = append(r, candidates[i].item)
		}
	}
	return r
}

// Stats walks the tree and returns a summary of its shape.
func (t *Tree[T]) Stats() Stats {
	var s Stats
	t.root.stats(&s)
	s.Strays = len(t.strays)
	return s
}

// String returns a summary description of the tree.
func (t *Tree[T]) String() string {
	return fmt.Sprintf("Tree{Bounds:%s,Bounded:%t,MaxDepth:%d,MaxChildren:%d,Split:%s,Len:%d}",
		t.Bounds(), t.cfg.bounded, t.cfg.maxDepth, t.cfg.maxChildren, t.cfg.split, t.n)
}
