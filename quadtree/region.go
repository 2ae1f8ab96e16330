// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

// Quadrant indices into a region's nodes slice. Top is the side of
// smaller Y.
const (
	topLeft = iota
	topRight
	bottomLeft
	bottomRight
)

// An entry is an item together with the box the Tree indexed it under.
// The box is computed once on insert and reused on subdivision and for
// the final overlap filter.
type entry[T Item] struct {
	box
	item T
}

// A region is a node of the Tree covering one axis-aligned box.
//
// A region is a leaf while nodes is empty, and holds its items
// directly. Once it subdivides it has exactly four nodes for the rest
// of its life (or until cleared), and only keeps items in stuck: those
// which, in a bounded tree, did not fit entirely into the quadrant
// selected for them.
//
// Every entry stored in a region, directly or in stuck, lies within
// the region's box. That is what lets collect prune whole subtrees.
type region[T Item] struct {
	box   box
	depth int
	cfg   *config
	// items holds the entries of a leaf region.
	items []entry[T]
	// stuck holds the straddling entries of an internal region.
	stuck []entry[T]
	// nodes is either empty or the four quadrants, indexed by topLeft,
	// topRight, bottomLeft and bottomRight.
	nodes []*region[T]
	// midX and midY are the split lines, valid once nodes is populated.
	midX, midY float64
}

func newRegion[T Item](b box, depth int, cfg *config) *region[T] {
	return &region[T]{box: b, depth: depth, cfg: cfg}
}

func (r *region[T]) isLeaf() bool {
	return len(r.nodes) == 0
}

func (r *region[T]) insert(e entry[T]) {
	// Internal region: push down into a quadrant, or keep as a
	// straddler if the item does not fit.
	if !r.isLeaf() {
		n := r.nodes[r.quadrant(&e.box)]
		if r.cfg.bounded && !n.box.contains(&e.box) {
			r.stuck = append(r.stuck, e)
			return
		}
		n.insert(e)
		return
	}

	// Leaf region: store directly, subdividing once the leaf is over
	// capacity unless it is already at the depth limit.
	r.items = append(r.items, e)
	if r.depth < r.cfg.maxDepth && len(r.items) > r.cfg.maxChildren {
		r.subdivide()
		items := r.items
		r.items = nil
		for i := range items {
			r.insert(items[i])
		}
	}
}

// quadrant returns the index of the quadrant whose side of the split
// lines contains the origin of b. Entries on a split line go to the
// top and/or left.
func (r *region[T]) quadrant(b *box) int {
	left := b.xMin <= r.midX
	top := b.yMin <= r.midY
	switch {
	case left && top:
		return topLeft
	case top:
		return topRight
	case left:
		return bottomLeft
	default:
		return bottomRight
	}
}

func (r *region[T]) subdivide() {
	r.midX, r.midY = r.box.split(r.cfg.split)
	depth := r.depth + 1
	b := r.box
	r.nodes = make([]*region[T], 4)
	r.nodes[topLeft] = newRegion[T](box{b.xMin, b.yMin, r.midX, r.midY}, depth, r.cfg)
	r.nodes[topRight] = newRegion[T](box{r.midX, b.yMin, b.xMax, r.midY}, depth, r.cfg)
	r.nodes[bottomLeft] = newRegion[T](box{b.xMin, r.midY, r.midX, b.yMax}, depth, r.cfg)
	r.nodes[bottomRight] = newRegion[T](box{r.midX, r.midY, b.xMax, b.yMax}, depth, r.cfg)
}

// retrieve follows the quadrant selection rule for b down to a leaf,
// appending the straddlers met on the way and the leaf's items.
func (r *region[T]) retrieve(b *box, out []T) []T {
	out = appendItems(out, r.stuck)
	if r.isLeaf() {
		return appendItems(out, r.items)
	}
	return r.nodes[r.quadrant(b)].retrieve(b, out)
}

// collect appends every entry held by a region whose box intersects q.
// The result is conservative: entries are not individually tested.
func (r *region[T]) collect(q *box, out []entry[T]) []entry[T] {
	if !r.box.intersects(q) {
		return out
	}
	out = append(out, r.stuck...)
	if r.isLeaf() {
		return append(out, r.items...)
	}
	for _, n := range r.nodes {
		out = n.collect(q, out)
	}
	return out
}

func (r *region[T]) clear() {
	r.items = nil
	r.stuck = nil
	for _, n := range r.nodes {
		n.clear()
	}
	r.nodes = nil
	r.midX, r.midY = 0, 0
}

func (r *region[T]) stats(s *Stats) {
	s.Nodes++
	if r.depth > s.Depth {
		s.Depth = r.depth
	}
	s.Straddlers += len(r.stuck)
	if r.isLeaf() {
		s.Leaves++
		s.Items += len(r.items)
		return
	}
	for _, n := range r.nodes {
		n.stats(s)
	}
}

func appendItems[T Item](out []T, entries []entry[T]) []T {
	for i := range entries {
		out = append(out, entries[i].item)
	}
	return out
}
