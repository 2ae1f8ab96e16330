// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package maskquad indexes datasets of geographic circles for map
// layers which mask or highlight the area around each point, and reads
// and writes them in a compact binary file format.
//
// A Dataset is built once from a list of circles. Map tiles query it
// with Search, padding the tile bound by the largest circle radius
// (converted to coordinate units by the caller) so that circles centred
// just outside a tile but reaching into it are drawn too. A Layer
// holds the current Dataset and replaces it atomically when new data
// arrives, so tiles may keep querying while a new dataset is built.
//
// Projection of coordinates to pixels and all drawing are left to the
// caller.
package maskquad
