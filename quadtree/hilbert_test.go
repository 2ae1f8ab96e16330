// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// hilbertInputs should be kept sorted in order of relative Hilbert
// number within the extent [0,0,100,100].
//
// ... (0,0)
// ...   [A]                    [D]
// ...                 [F]
// ...              [E]
// ...
// ...   [B]                    [C]
// ...                              (100,100)
var hilbertInputs = []struct {
	name string
	p    Point
}{
	{"A", Point{10, 10}},
	{"E", Point{50, 50}},
	{"B", Point{10, 90}},
	{"C", Point{90, 90}},
	{"F", Point{60, 40}},
	{"D", Point{90, 10}},
}

var hilbertInputsExtent = Rect{0, 0, 100, 100}

func TestHilbertSortable(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		var zero hilbertSortable[Point]

		assert.Equal(t, 0, zero.Len())
	})

	t.Run("Swap", func(t *testing.T) {
		hs := hilbertSortable[Point]{
			items: []Point{{1, 1}, {2, 2}},
			keys:  []uint32{20, 10},
		}

		assert.True(t, hs.Less(1, 0))
		assert.False(t, hs.Less(0, 1))

		hs.Swap(0, 1)

		assert.Equal(t, []Point{{2, 2}, {1, 1}}, hs.items)
		assert.Equal(t, []uint32{10, 20}, hs.keys)
		assert.True(t, hs.Less(0, 1))
	})
}

func TestHilbertSort(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		var items []Point

		HilbertSort(items, Rect{})

		assert.Empty(t, items)
	})

	t.Run("Singleton", func(t *testing.T) {
		items := []Rect{{-1, -1, 2, 2}}

		HilbertSort(items, Rect{-1, -1, 2, 2})

		assert.Equal(t, []Rect{{-1, -1, 2, 2}}, items)
	})

	t.Run("hilbertInputs", func(t *testing.T) {
		items := make([]Point, len(hilbertInputs))
		expected := make([]Point, len(hilbertInputs))
		for i := range hilbertInputs {
			expected[i] = hilbertInputs[i].p
			items[len(items)-1-i] = hilbertInputs[i].p
		}

		HilbertSort(items, hilbertInputsExtent)

		assert.Equal(t, expected, items)
	})
}

func TestHilbertOfCenter(t *testing.T) {
	t.Run("ZeroWidth", func(t *testing.T) {
		actual := hilbertOfCenter(&box{0, 5, 0, 5}, 0, 0, 0, 10)

		assert.Equal(t, hilbertOfXY(0, 32767), actual)
	})

	t.Run("ZeroHeight", func(t *testing.T) {
		actual := hilbertOfCenter(&box{5, 0, 5, 0}, 0, 0, 10, 0)

		assert.Equal(t, hilbertOfXY(32767, 0), actual)
	})

	t.Run("Clamped", func(t *testing.T) {
		below := hilbertOfCenter(&box{-50, -50, -40, -40}, 0, 0, 10, 10)
		above := hilbertOfCenter(&box{50, 50, 60, 60}, 0, 0, 10, 10)

		assert.Equal(t, uint32(0), below)
		assert.Equal(t, hilbertOfXY(hilbertMax, hilbertMax), above)
	})

	t.Run("hilbertInputs", func(t *testing.T) {
		var prev uint32
		for i := range hilbertInputs {
			b := boxOf(hilbertInputs[i].p.Extent())
			h := hilbertOfCenter(&b, 0, 0, 100, 100)
			if i > 0 {
				assert.Greater(t, h, prev, "hilbertOfCenter(%s) must be greater than its predecessor", hilbertInputs[i].name)
			}
			prev = h
		}
	})
}

func TestHilbertCoord(t *testing.T) {
	testCases := []struct {
		name     string
		input    float64
		expected uint32
	}{
		{"Zero", 0, 0},
		{"Negative", -0.5, 0},
		{"NaN", math.NaN(), 0},
		{"Half", 0.5, 32767},
		{"One", 1, hilbertMax},
		{"Over", 7, hilbertMax},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, hilbertCoord(testCase.input))
		})
	}
}

func TestHilbertOfXY(t *testing.T) {
	testCases := []struct {
		name     string
		x, y     uint32
		expected uint32
	}{
		{name: "Zero"},
		{name: "OneX", x: 1, y: 0, expected: 1},
		{name: "OneXY", x: 1, y: 1, expected: 2},
		{name: "OneY", x: 0, y: 1, expected: 3},
		{name: "HalfXY", x: 0x7fff, y: 0x7fff, expected: 0x2aaaaaaa},
		{name: "MaxY", x: 0, y: 0xffff, expected: 0x55555555},
		{name: "MaxXY", x: 0xffff, y: 0xffff, expected: 0xaaaaaaaa},
		{name: "MaxX", x: 0xffff, y: 0, expected: 0xffffffff},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := hilbertOfXY(testCase.x, testCase.y)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}
