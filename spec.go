// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package maskquad

import (
	"io"
)

const (
	// magicLen is the length of the dataset file magic number in bytes.
	magicLen = 8
	// MinSpecMajorVersion is the minimum major version of the dataset
	// file format that this package can read.
	MinSpecMajorVersion = 0x01
	// MaxSpecMajorVersion is the maximum major version of the dataset
	// file format that this package can read.
	MaxSpecMajorVersion = 0x01
	// tableMaxLen is the maximum size of the dataset table this package
	// will read, to prevent corrupted or malicious size prefixes from
	// causing huge and pointless memory allocations. It allows for a
	// little over eleven million circles.
	tableMaxLen = 256 * 1024 * 1024
	// majorIndex and patchIndex locate the version bytes within the
	// magic number.
	majorIndex = 3
	patchIndex = 7
)

// magic contains the dataset file magic number.
//
// The fourth byte is the major version of the file format written by
// this package, and the last byte is the patch version.
var magic = [magicLen]byte{0x6d, 0x71, 0x64, 0x01, 0x6d, 0x71, 0x64, 0x00}

// SpecVersion is a version of the dataset file format.
type SpecVersion struct {
	// Major is the major version of the file format.
	Major uint8
	// Patch is the patch version of the file format.
	Patch uint8
}

// Magic reads the dataset file magic number from a stream and if it is
// valid, returns the file format version. It does not check whether
// the version is one this package can read, and does not read beyond
// the magic number.
func Magic(r io.Reader) (SpecVersion, error) {
	m := make([]byte, magicLen)
	if _, err := io.ReadFull(r, m); err != nil {
		return SpecVersion{}, err
	}
	for i := range magic {
		if i != majorIndex && i != patchIndex && m[i] != magic[i] {
			return SpecVersion{}, ErrInvalidMagic
		}
	}
	return SpecVersion{Major: m[majorIndex], Patch: m[patchIndex]}, nil
}
