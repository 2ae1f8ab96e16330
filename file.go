// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package maskquad

import (
	"io"

	"github.com/gogama/maskquad/flat"
	"github.com/gogama/maskquad/quadtree"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/paulmach/orb"
)

// File is the decoded contents of a dataset file.
type File struct {
	// Version is the file format version read from the magic number.
	Version SpecVersion
	// Name is the dataset name, which may be empty.
	Name string
	// Radius is the default radius the dataset was written with.
	Radius float64
	// Circles contains the circles in file order.
	Circles []Circle
}

// Dataset builds a Dataset from the file's circles. If opts does not
// set a default radius, the file's default radius is used.
func (f *File) Dataset(opts *Options) (*Dataset, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Radius == 0 {
		o.Radius = f.Radius
	}
	return NewDataset(f.Circles, &o)
}

// WriteFile writes a dataset to a stream in the dataset file format,
// returning the number of bytes written.
//
// Circles are written in Hilbert order over the dataset bound, so that
// circles close together in space are close together in the file.
// Panics if w or d is nil.
func WriteFile(w io.Writer, name string, d *Dataset) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	} else if d == nil {
		textPanic("nil dataset")
	}

	// Sort a copy of the circles.
	circles := d.Circles()
	quadtree.HilbertSort(circles, d.indexRect())

	// Build the size-prefixed dataset table.
	b := flatbuffers.NewBuilder(64 + len(name) + len(circles)*flat.CircleSize)
	nameOffset := b.CreateString(name)
	flat.DatasetStartCirclesVector(b, len(circles))
	for i := len(circles) - 1; i >= 0; i-- {
		c := &circles[i]
		flat.CreateCircle(b, c.Point.Lon(), c.Point.Lat(), c.Radius)
	}
	circlesOffset := b.EndVector(len(circles))
	flat.DatasetStart(b)
	flat.DatasetAddName(b, nameOffset)
	flat.DatasetAddRadius(b, d.radius)
	flat.DatasetAddCircles(b, circlesOffset)
	b.FinishSizePrefixed(flat.DatasetEnd(b))

	// Write the magic number.
	m, err := w.Write(magic[:])
	n += m
	if err != nil {
		err = wrapErr("failed to write magic number", err)
		return
	}

	// Write the table.
	m, err = writeSizePrefixedBuffer(w, b.FinishedBytes())
	n += m
	if err != nil {
		err = wrapErr("failed to write dataset", err)
	}
	return
}

// ReadFile reads a dataset file from a stream. The stream is read up to
// the end of the dataset table and no further. Panics if r is nil.
func ReadFile(r io.Reader) (*File, error) {
	if r == nil {
		textPanic("nil reader")
	}

	// Check the magic number and version.
	version, err := Magic(r)
	if err != nil {
		return nil, wrapErr("failed to read magic number", err)
	} else if version.Major < MinSpecMajorVersion || version.Major > MaxSpecMajorVersion {
		return nil, fmtErr("unsupported file format version %d.%d", version.Major, version.Patch)
	}

	// Read the raw table.
	buf, err := readSizePrefixedBuffer(r, tableMaxLen)
	if err != nil {
		return nil, err
	}

	// Decode the table, trapping panics caused by corrupt data.
	f := &File{Version: version}
	err = safeFlatBuffersInteraction(func() error {
		ds := flat.GetSizePrefixedRootAsDataset(buf, 0)
		f.Name = string(ds.Name())
		f.Radius = ds.Radius()
		n := ds.CirclesLength()
		if n < 0 || n > (len(buf)-flatbuffers.SizeUint32)/flat.CircleSize {
			return fmtErr("circle count %d exceeds table size %d", n, len(buf)-flatbuffers.SizeUint32)
		}
		f.Circles = make([]Circle, n)
		var c flat.Circle
		for i := 0; i < n; i++ {
			ds.Circles(&c, i)
			f.Circles[i] = Circle{
				Point:  orb.Point{c.X(), c.Y()},
				Radius: c.Radius(),
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapErr("failed to decode dataset", err)
	}

	return f, nil
}
