// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import "math"

// A box is the internal, edge-based form of a Rect. Region bounds are
// kept as boxes so that sibling quadrants share their split line
// exactly instead of recomputing it from an origin and a width.
type box struct {
	xMin float64
	yMin float64
	xMax float64
	yMax float64
}

func boxOf(r Rect) box {
	return box{
		xMin: r.X,
		yMin: r.Y,
		xMax: r.X + r.Width,
		yMax: r.Y + r.Height,
	}
}

func pointBox(x, y float64) box {
	return box{xMin: x, yMin: y, xMax: x, yMax: y}
}

func (b *box) rect() Rect {
	return Rect{
		X:      b.xMin,
		Y:      b.yMin,
		Width:  b.xMax - b.xMin,
		Height: b.yMax - b.yMin,
	}
}

func (b *box) valid() bool {
	return finite(b.xMin) && finite(b.yMin) &&
		finite(b.xMax) && finite(b.yMax) &&
		b.xMin <= b.xMax && b.yMin <= b.yMax
}

func (b *box) midX() float64 {
	return (b.xMin + b.xMax) / 2
}

func (b *box) midY() float64 {
	return (b.yMin + b.yMax) / 2
}

// intersects is the closed overlap test: the boxes overlap unless one
// lies strictly to one side of the other.
func (b *box) intersects(o *box) bool {
	return !(b.xMin > o.xMax ||
		o.xMin > b.xMax ||
		b.yMin > o.yMax ||
		o.yMin > b.yMax)
}

func (b *box) contains(o *box) bool {
	return o.xMin >= b.xMin &&
		o.xMax <= b.xMax &&
		o.yMin >= b.yMin &&
		o.yMax <= b.yMax
}

// split returns the lines along which the box is divided into four
// quadrants.
func (b *box) split(mode SplitMode) (x, y float64) {
	if mode == SplitFloor {
		x = b.xMin + math.Floor((b.xMax-b.xMin)/2)
		y = b.yMin + math.Floor((b.yMax-b.yMin)/2)
		return
	}
	return b.midX(), b.midY()
}
