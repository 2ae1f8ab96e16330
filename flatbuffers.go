// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package maskquad

import (
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
)

// safeFlatBuffersInteraction runs f, converting any panic raised while
// it runs into an error.
//
// FlatBuffers accessors report corrupt data, such as offsets pointing
// outside the buffer, by panicking instead of returning an error. A
// runtime error panic is wrapped so that it stays visible to errors.As.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case error:
			err = wrapErr("corrupt FlatBuffers data", r)
		default:
			err = fmtErr("corrupt FlatBuffers data: %v", r)
		}
	}()
	return f()
}

// writeSizePrefixedBuffer writes a finished, size-prefixed FlatBuffers
// buffer to an output stream after checking that the size prefix
// agrees with the buffer length.
func writeSizePrefixedBuffer(w io.Writer, b []byte) (n int, err error) {
	var size uint32
	if size, err = bufferSize(b); err != nil {
		return
	} else if uint64(size) != uint64(len(b)-flatbuffers.SizeUint32) {
		err = fmtErr("FlatBuffers size prefix does not match buffer (Len=%d, size=%d)", len(b), size)
		return
	}
	return w.Write(b)
}

func bufferSize(b []byte) (size uint32, err error) {
	if len(b) < flatbuffers.SizeUint32 {
		err = fmtErr("FlatBuffers buffer too short for size prefix (Len=%d)", len(b))
		return
	}
	size = flatbuffers.GetUint32(b)
	return
}

// readSizePrefixedBuffer reads a size-prefixed FlatBuffers buffer from
// a stream, refusing buffers whose size prefix exceeds maxLen. The
// returned slice includes the prefix.
func readSizePrefixedBuffer(r io.Reader, maxLen uint32) ([]byte, error) {
	prefix := make([]byte, flatbuffers.SizeUint32)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, wrapErr("failed to read size prefix", err)
	}
	size, _ := bufferSize(prefix)
	if size > maxLen {
		return nil, fmtErr("size prefix %d exceeds maximum %d", size, maxLen)
	}
	b := make([]byte, flatbuffers.SizeUint32+int(size))
	copy(b, prefix)
	if _, err := io.ReadFull(r, b[flatbuffers.SizeUint32:]); err != nil {
		return nil, wrapErr("failed to read %d-byte table", err, size)
	}
	return b, nil
}
