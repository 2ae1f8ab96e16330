// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package maskquad

import (
	"math"

	"github.com/gogama/maskquad/quadtree"
	"github.com/paulmach/orb"
)

// Circle is a dataset entry: a position given as longitude and latitude
// plus a radius.
//
// The radius is carried along for the caller and is not interpreted
// by the index. A zero radius means the dataset's default radius.
type Circle struct {
	Point  orb.Point
	Radius float64
}

// Extent returns the zero-size rectangle at the circle's centre. It
// implements quadtree.Item.
func (c Circle) Extent() quadtree.Rect {
	return quadtree.Rect{X: c.Point.Lon(), Y: c.Point.Lat()}
}

func (c *Circle) validate(i int) error {
	if !finite(c.Point.Lon()) || !finite(c.Point.Lat()) {
		return fmtErr("circle %d: non-finite position %s", i, formatPoint(c.Point))
	} else if !finite(c.Radius) || c.Radius < 0 {
		return fmtErr("circle %d: invalid radius %s", i, formatFloat(c.Radius))
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
