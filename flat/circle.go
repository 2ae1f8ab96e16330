// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// CircleSize is the size in bytes of a Circle struct.
const CircleSize = 24

// CircleAlign is the alignment in bytes of a Circle struct.
const CircleAlign = 8

type Circle struct {
	_tab flatbuffers.Struct
}

func (rcv *Circle) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Circle) Table() flatbuffers.Table {
	return rcv._tab.Table
}

func (rcv *Circle) X() float64 {
	return rcv._tab.GetFloat64(rcv._tab.Pos + flatbuffers.UOffsetT(0))
}

func (rcv *Circle) Y() float64 {
	return rcv._tab.GetFloat64(rcv._tab.Pos + flatbuffers.UOffsetT(8))
}

func (rcv *Circle) Radius() float64 {
	return rcv._tab.GetFloat64(rcv._tab.Pos + flatbuffers.UOffsetT(16))
}

func CreateCircle(builder *flatbuffers.Builder, x float64, y float64, radius float64) flatbuffers.UOffsetT {
	builder.Prep(CircleAlign, CircleSize)
	builder.PrependFloat64(radius)
	builder.PrependFloat64(y)
	builder.PrependFloat64(x)
	return builder.Offset()
}
