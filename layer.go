// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package maskquad

import (
	"sync"
	"sync/atomic"

	"github.com/paulmach/orb"
)

// Layer holds the dataset currently shown by a map layer.
//
// SetData builds a new Dataset off to the side and then swaps it in,
// so tile queries running concurrently keep reading the old dataset
// until they finish. Layer methods are safe for concurrent use.
type Layer struct {
	// mu serializes writers. Readers only load current.
	mu      sync.Mutex
	opts    Options
	current atomic.Pointer[Dataset]
}

// NewLayer creates a Layer without data. opts configures every Dataset
// the layer builds and may be nil.
func NewLayer(opts *Options) *Layer {
	l := &Layer{}
	if opts != nil {
		l.opts = *opts
	}
	return l
}

// SetData replaces the layer's dataset with one built from circles. On
// error the current dataset is left in place.
func (l *Layer) SetData(circles []Circle) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, err := NewDataset(circles, &l.opts)
	if err != nil {
		return err
	}
	l.current.Store(d)
	return nil
}

// SetRadius sets the default radius for datasets built by later calls
// to SetData. The current dataset is not rebuilt. Zero restores
// DefaultRadius.
func (l *Layer) SetRadius(radius float64) error {
	if !finite(radius) || radius < 0 {
		return fmtErr("invalid default radius %s", formatFloat(radius))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.opts.Radius = radius
	return nil
}

// Dataset returns the current dataset, or nil if SetData has not yet
// succeeded.
func (l *Layer) Dataset() *Dataset {
	return l.current.Load()
}

// Search runs Dataset.Search against the current dataset. It returns
// an empty slice if the layer has no data.
func (l *Layer) Search(b orb.Bound, pad float64) []Circle {
	d := l.current.Load()
	if d == nil {
		return []Circle{}
	}
	return d.Search(b, pad)
}
