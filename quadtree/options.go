// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"strconv"
	"strings"
)

const (
	// DefaultMaxDepth is the maximum region depth used when no MaxDepth
	// option is given. The root region has depth zero.
	DefaultMaxDepth = 4
	// DefaultMaxChildren is the number of items a leaf region may hold
	// before it subdivides, used when no MaxChildren option is given.
	DefaultMaxChildren = 4
)

// SplitMode selects where a region is divided when it subdivides.
type SplitMode int

const (
	// SplitExact bisects a region at its exact centre.
	SplitExact SplitMode = iota
	// SplitFloor divides a region at its origin plus the floor of half
	// its width (height), suiting trees whose coordinates are integer
	// pixels. The right (bottom) quadrants receive the remainder, so the
	// quadrants still cover the whole region.
	SplitFloor
)

// String returns "exact" or "floor".
func (m SplitMode) String() string {
	switch m {
	case SplitExact:
		return "exact"
	case SplitFloor:
		return "floor"
	default:
		return "SplitMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseSplitMode returns the SplitMode named by s, which is matched
// case-insensitively against the values returned by SplitMode.String.
func ParseSplitMode(s string) (SplitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact", "":
		return SplitExact, nil
	case "floor":
		return SplitFloor, nil
	default:
		return 0, fmtErr("unknown split mode %q", s)
	}
}

// An Option configures a Tree at construction time.
type Option func(*config)

type config struct {
	bounded     bool
	maxDepth    int
	maxChildren int
	split       SplitMode
}

func newConfig(opts []Option) *config {
	c := &config{
		bounded:     true,
		maxDepth:    DefaultMaxDepth,
		maxChildren: DefaultMaxChildren,
		split:       SplitExact,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxDepth < 0 {
		fmtPanic("max depth must be non-negative (got %d)", c.maxDepth)
	} else if c.maxChildren < 1 {
		fmtPanic("max children must be at least 1 (got %d)", c.maxChildren)
	} else if c.split != SplitExact && c.split != SplitFloor {
		fmtPanic("invalid split mode %d", int(c.split))
	}
	return c
}

// Bounded selects whether the Tree stores bounded items (true, the
// default) or points (false).
//
// In a bounded tree, an item whose extent crosses a quadrant boundary
// stays in the straddling list of the region that could not push it
// down. In a point tree only the origin of each item's extent is
// indexed and items always descend to a leaf.
func Bounded(b bool) Option {
	return func(c *config) {
		c.bounded = b
	}
}

// MaxDepth sets the depth beyond which regions no longer subdivide.
// Panics at construction if n is negative.
func MaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// MaxChildren sets the number of items a leaf region holds before it
// subdivides. Panics at construction if n is less than 1.
func MaxChildren(n int) Option {
	return func(c *config) {
		c.maxChildren = n
	}
}

// Split sets the SplitMode used when regions subdivide.
func Split(m SplitMode) Option {
	return func(c *config) {
		c.split = m
	}
}
