// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadtree provides a region quadtree spatial index over
// points or bounded items, answering window queries of the form "which
// items overlap this rectangle?".
//
// A Tree is built once over a known bounding rectangle, filled with
// Insert or InsertAll, and then queried with RetrieveInBounds (exact)
// or Retrieve (same-cell). Trees are meant to be rebuilt wholesale
// when the underlying data changes rather than patched in place.
//
// A Tree is not safe for concurrent mutation. Once fully built it may
// be queried from any number of goroutines provided nothing inserts
// into it or clears it at the same time.
package quadtree
