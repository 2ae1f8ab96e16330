// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type Dataset struct {
	_tab flatbuffers.Table
}

func GetRootAsDataset(buf []byte, offset flatbuffers.UOffsetT) *Dataset {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Dataset{}
	x.Init(buf, n+offset)
	return x
}

func GetSizePrefixedRootAsDataset(buf []byte, offset flatbuffers.UOffsetT) *Dataset {
	n := flatbuffers.GetUOffsetT(buf[offset+flatbuffers.SizeUint32:])
	x := &Dataset{}
	x.Init(buf, n+offset+flatbuffers.SizeUint32)
	return x
}

func (rcv *Dataset) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Dataset) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Dataset) Name() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *Dataset) Radius() float64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetFloat64(o + rcv._tab.Pos)
	}
	return 0.0
}

func (rcv *Dataset) Circles(obj *Circle, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * CircleSize
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *Dataset) CirclesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func DatasetStart(builder *flatbuffers.Builder) {
	builder.StartObject(3)
}

func DatasetAddName(builder *flatbuffers.Builder, name flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, flatbuffers.UOffsetT(name), 0)
}

func DatasetAddRadius(builder *flatbuffers.Builder, radius float64) {
	builder.PrependFloat64Slot(1, radius, 0.0)
}

func DatasetAddCircles(builder *flatbuffers.Builder, circles flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, flatbuffers.UOffsetT(circles), 0)
}

func DatasetStartCirclesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(CircleSize, numElems, CircleAlign)
}

func DatasetEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
