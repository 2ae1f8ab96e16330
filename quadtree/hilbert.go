// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"math"
	"sort"
)

const (
	// HilbertOrder is the order of the Hilbert curve used in
	// HilbertSort.
	HilbertOrder = 16
	// hilbertMax is the maximum input X- or Y-coordinate of
	// hilbertOfXY.
	//
	// In a Hilbert curve of order N, X- and Y- coordinates range from
	// zero to 2^N-1, so in a Hilbert curve of order 1, the X- and Y-
	// coordinates range from 0 to 1, and so on.
	hilbertMax = (1 << HilbertOrder) - 1
)

// hilbertSortable is an implementation of sort.Interface which allows
// us to use the reflection-free, hence slightly more performant,
// sort.Sort function instead of sort.Slice. The Hilbert index of each
// item is computed once up front and swapped along with the item.
type hilbertSortable[T Item] struct {
	items []T
	keys  []uint32
}

func (hs *hilbertSortable[T]) Len() int {
	return len(hs.items)
}

func (hs *hilbertSortable[T]) Less(i, j int) bool {
	return hs.keys[i] < hs.keys[j]
}

func (hs *hilbertSortable[T]) Swap(i, j int) {
	hs.items[i], hs.items[j] = hs.items[j], hs.items[i]
	hs.keys[i], hs.keys[j] = hs.keys[j], hs.keys[i]
}

// HilbertSort sorts a list of items, whose bounding rectangle is given
// by extent, according to the position of the centre of each item's
// extent along a Hilbert curve of order HilbertOrder. Items lying
// outside extent are clamped to its edges.
//
// The sort algorithm is not guaranteed to be stable, so the relative
// position of two items with the same index on the Hilbert curve may
// change as a result of the sort.
func HilbertSort[T Item](items []T, extent Rect) {
	hs := hilbertSortable[T]{
		items: items,
		keys:  make([]uint32, len(items)),
	}
	for i := range items {
		b := boxOf(items[i].Extent())
		hs.keys[i] = hilbertOfCenter(&b, extent.X, extent.Y, extent.Width, extent.Height)
	}
	sort.Sort(&hs)
}

// hilbertOfCenter calculates the Hilbert curve index of the centre of
// a box in the context of a set of boxes bounded by the rectangle
// (ex, ey, ex+ew, ey+eh).
func hilbertOfCenter(b *box, ex, ey, ew, eh float64) uint32 {
	var hx uint32 // Hilbert X-coordinate between 0 and hilbertMax
	if ew > 0 {
		hx = hilbertCoord((b.midX() - ex) / ew)
	}
	var hy uint32 // Hilbert Y-coordinate between 0 and hilbertMax
	if eh > 0 {
		hy = hilbertCoord((b.midY() - ey) / eh)
	}
	return hilbertOfXY(hx, hy)
}

// hilbertCoord scales a relative position in [0, 1] to a Hilbert
// coordinate.
func hilbertCoord(r float64) uint32 {
	if !(r > 0) {
		return 0
	} else if r >= 1 {
		return hilbertMax
	}
	return uint32(math.Floor(hilbertMax * r))
}

// hilbertOfXY calculates the Hilbert curve index of a given
// two-dimensional coordinate.
//
// Based on https://github.com/rawrunprotected/hilbert_curves, which is
// in the public domain.
func hilbertOfXY(x, y uint32) uint32 {
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	a = A
	b = B
	c = C
	d = D
	A = (a & (a >> 2)) ^ (b & (b >> 2))
	B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))
	C ^= (a & (c >> 2)) ^ (b & (d >> 2))
	D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))

	a = A
	b = B
	c = C
	d = D
	A = (a & (a >> 4)) ^ (b & (b >> 4))
	B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))
	C ^= (a & (c >> 4)) ^ (b & (d >> 4))
	D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))

	a = A
	b = B
	c = C
	d = D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	i0 = (i0 | (i0 << 8)) & 0x00FF00FF
	i0 = (i0 | (i0 << 4)) & 0x0F0F0F0F
	i0 = (i0 | (i0 << 2)) & 0x33333333
	i0 = (i0 | (i0 << 1)) & 0x55555555

	i1 = (i1 | (i1 << 8)) & 0x00FF00FF
	i1 = (i1 | (i1 << 4)) & 0x0F0F0F0F
	i1 = (i1 | (i1 << 2)) & 0x33333333
	i1 = (i1 | (i1 << 1)) & 0x55555555

	return (i1 << 1) | i0
}
