// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package flat contains the FlatBuffers accessors and builders for the
// maskquad dataset file schema in schema.fbs. The API follows the shape
// of flatc's Go output so that it can be swapped for generated code
// without touching callers.
//
// Accessors do not validate their input. Reading a corrupt buffer may
// panic, so callers decoding untrusted data must trap panics.
package flat
