// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package maskquad

import (
	"github.com/gogama/maskquad/quadtree"
	"github.com/paulmach/orb"
)

const (
	// DefaultRadius is the radius given to circles with a zero radius
	// when Options.Radius is not set.
	DefaultRadius = 5
	// DefaultMaxDepth is the index depth limit used when
	// Options.MaxDepth is not set.
	DefaultMaxDepth = 6
	// DefaultMaxChildren is the index leaf capacity used when
	// Options.MaxChildren is not set.
	DefaultMaxChildren = 6
	// FlatIndex is the Options.MaxDepth value selecting an index which
	// never subdivides, that is a depth limit of zero.
	FlatIndex = -1
)

// emptyRect is the index rectangle of a dataset without circles.
var emptyRect = quadtree.Rect{Width: 0.1, Height: 0.1}

// Options configures how a Dataset is built. The zero value selects
// all defaults.
type Options struct {
	// Radius is the radius substituted for circles whose radius is
	// zero. If zero, DefaultRadius is used.
	Radius float64
	// MaxDepth is the index depth limit. If zero, DefaultMaxDepth is
	// used. FlatIndex selects a depth limit of zero.
	MaxDepth int
	// MaxChildren is the number of circles an index leaf holds before
	// it subdivides. If zero, DefaultMaxChildren is used.
	MaxChildren int
	// Points selects a point index instead of a bounds index. Since
	// circles are indexed by their centre both answer the same queries.
	Points bool
	// Split selects where index regions are divided.
	Split quadtree.SplitMode
}

func (o *Options) withDefaults() Options {
	var d Options
	if o != nil {
		d = *o
	}
	if d.Radius == 0 {
		d.Radius = DefaultRadius
	}
	if d.MaxDepth == 0 {
		d.MaxDepth = DefaultMaxDepth
	}
	if d.MaxChildren == 0 {
		d.MaxChildren = DefaultMaxChildren
	}
	return d
}

func (o *Options) depth() int {
	if o.MaxDepth == FlatIndex {
		return 0
	}
	return o.MaxDepth
}

func (o *Options) validate() error {
	if !finite(o.Radius) || o.Radius < 0 {
		return fmtErr("invalid default radius %s", formatFloat(o.Radius))
	} else if o.MaxDepth < FlatIndex {
		return fmtErr("invalid max depth %d", o.MaxDepth)
	} else if o.MaxChildren < 0 {
		return fmtErr("invalid max children %d", o.MaxChildren)
	} else if o.Split != quadtree.SplitExact && o.Split != quadtree.SplitFloor {
		return fmtErr("invalid split mode %s", o.Split)
	}
	return nil
}

// Dataset is an immutable, indexed set of circles. It is safe for
// concurrent use by multiple goroutines.
type Dataset struct {
	circles   []Circle
	bound     orb.Bound
	radius    float64
	maxRadius float64
	tree      *quadtree.Tree[Circle]
}

// NewDataset builds a Dataset from a list of circles. The list is
// copied, and circles with a zero radius are given the default radius.
//
// An error is returned if a circle has a NaN or infinite coordinate or
// a radius which is negative, NaN or infinite, or if opts is invalid.
// An empty list is valid and yields an empty Dataset.
func NewDataset(circles []Circle, opts *Options) (*Dataset, error) {
	o := opts.withDefaults()
	if err := o.validate(); err != nil {
		return nil, err
	}

	d := &Dataset{
		circles: make([]Circle, len(circles)),
		radius:  o.Radius,
	}
	for i := range circles {
		c := circles[i]
		if err := c.validate(i); err != nil {
			return nil, err
		}
		if c.Radius == 0 {
			c.Radius = o.Radius
		}
		if i == 0 {
			d.bound = c.Point.Bound()
		} else {
			d.bound = d.bound.Extend(c.Point)
		}
		if c.Radius > d.maxRadius {
			d.maxRadius = c.Radius
		}
		d.circles[i] = c
	}

	d.tree = quadtree.New[Circle](d.indexRect(),
		quadtree.Bounded(!o.Points),
		quadtree.MaxDepth(o.depth()),
		quadtree.MaxChildren(o.MaxChildren),
		quadtree.Split(o.Split))
	d.tree.InsertAll(d.circles...)

	return d, nil
}

func (d *Dataset) indexRect() quadtree.Rect {
	if len(d.circles) == 0 {
		return emptyRect
	}
	return rectOf(d.bound)
}

// Len returns the number of circles in the dataset.
func (d *Dataset) Len() int {
	return len(d.circles)
}

// Bound returns the bound of all circle centres. It is the zero Bound
// if the dataset is empty.
func (d *Dataset) Bound() orb.Bound {
	return d.bound
}

// Radius returns the default radius the dataset was built with.
func (d *Dataset) Radius() float64 {
	return d.radius
}

// MaxRadius returns the largest radius of any circle in the dataset,
// or zero if the dataset is empty.
func (d *Dataset) MaxRadius() float64 {
	return d.maxRadius
}

// Circles returns a copy of the dataset's circles in their original
// order, with default radii filled in.
func (d *Dataset) Circles() []Circle {
	c := make([]Circle, len(d.circles))
	copy(c, d.circles)
	return c
}

// Search returns every circle whose centre lies within b grown by pad
// on each side. Edges are inclusive. The order of the results is not
// defined.
//
// To find all circles which may reach into b, pass the dataset's
// maximum radius, converted to coordinate units, as pad.
func (d *Dataset) Search(b orb.Bound, pad float64) []Circle {
	return d.tree.RetrieveInBounds(rectOf(b).Pad(pad))
}

// Near returns the circles stored in the same index cell as p. It is
// cheaper than Search but approximate: circles in neighbouring cells
// are not returned, however close they are to p.
func (d *Dataset) Near(p orb.Point) []Circle {
	return d.tree.Retrieve(Circle{Point: p})
}

// Stats returns a summary of the shape of the dataset's index.
func (d *Dataset) Stats() quadtree.Stats {
	return d.tree.Stats()
}

func rectOf(b orb.Bound) quadtree.Rect {
	return quadtree.Span(b.Left(), b.Bottom(), b.Right(), b.Top())
}
