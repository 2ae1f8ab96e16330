// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"math"
	"strconv"
	"strings"
)

// An Item is anything that can be stored in a Tree. The Tree only ever
// looks at an item's extent; any other data the item carries is opaque
// to it.
//
// A point item returns a zero-size Rect positioned at the point. In a
// Tree constructed with Bounded(false), only the origin (X, Y) of the
// extent is indexed, even if the width or height is non-zero.
type Item interface {
	Extent() Rect
}

// Rect is an axis-aligned rectangle with its origin at (X, Y) extending
// Width units in the positive X direction and Height units in the
// positive Y direction. All four edges are closed, so two rectangles
// which merely touch are considered to overlap.
//
// A Rect is well-formed if all its fields are finite and Width and
// Height are non-negative.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Extent returns the rectangle itself. It implements Item, so that
// plain rectangles can be stored in a Tree.
func (r Rect) Extent() Rect {
	return r
}

// Valid reports whether the rectangle is well-formed.
func (r Rect) Valid() bool {
	b := boxOf(r)
	return b.valid()
}

// Overlaps reports whether the rectangle and another rectangle share
// at least one point. Touching edges count as overlapping.
func (r Rect) Overlaps(o Rect) bool {
	a, b := boxOf(r), boxOf(o)
	return a.intersects(&b)
}

// Contains reports whether another rectangle lies entirely within the
// rectangle, edges included.
func (r Rect) Contains(o Rect) bool {
	a, b := boxOf(r), boxOf(o)
	return a.contains(&b)
}

// Pad returns a copy of the rectangle grown by d on every side. A
// negative d shrinks the rectangle, but never below zero size.
func (r Rect) Pad(d float64) Rect {
	p := Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
	if p.Width < 0 {
		p.X, p.Width = r.X+r.Width/2, 0
	}
	if p.Height < 0 {
		p.Y, p.Height = r.Y+r.Height/2, 0
	}
	return p
}

// Span returns the Rect covering the edges xMin, yMin, xMax and yMax.
//
// Width and height are widened, if need be, until X+Width and
// Y+Height are no less than xMax and yMax. Computing Width as
// xMax-xMin alone can round so that X+Width falls just short of xMax,
// leaving an item on that edge outside the rectangle.
func Span(xMin, yMin, xMax, yMax float64) Rect {
	return Rect{
		X:      xMin,
		Y:      yMin,
		Width:  spanLen(xMin, xMax),
		Height: spanLen(yMin, yMax),
	}
}

func spanLen(lo, hi float64) float64 {
	l := hi - lo
	for lo+l < hi {
		l = math.Nextafter(l, math.Inf(1))
	}
	return l
}

// String returns the rectangle formatted as "[X,Y,Width,Height]".
func (r Rect) String() string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(formatFloat(r.X))
	b.WriteByte(',')
	b.WriteString(formatFloat(r.Y))
	b.WriteByte(',')
	b.WriteString(formatFloat(r.Width))
	b.WriteByte(',')
	b.WriteString(formatFloat(r.Height))
	b.WriteByte(']')
	return b.String()
}

// Point is a point item.
type Point struct {
	X float64
	Y float64
}

// Extent returns a zero-size Rect at the point. It implements Item.
func (p Point) Extent() Rect {
	return Rect{X: p.X, Y: p.Y}
}

// String returns the point formatted as "(X,Y)".
func (p Point) String() string {
	return "(" + formatFloat(p.X) + "," + formatFloat(p.Y) + ")"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
