// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDataset(t *testing.T, name string, radius float64, circles [][3]float64, sizePrefixed bool) []byte {
	t.Helper()

	b := flatbuffers.NewBuilder(256)
	var nameOffset flatbuffers.UOffsetT
	if name != "" {
		nameOffset = b.CreateString(name)
	}
	var circlesOffset flatbuffers.UOffsetT
	if circles != nil {
		DatasetStartCirclesVector(b, len(circles))
		for i := len(circles) - 1; i >= 0; i-- {
			CreateCircle(b, circles[i][0], circles[i][1], circles[i][2])
		}
		circlesOffset = b.EndVector(len(circles))
	}
	DatasetStart(b)
	if name != "" {
		DatasetAddName(b, nameOffset)
	}
	DatasetAddRadius(b, radius)
	if circles != nil {
		DatasetAddCircles(b, circlesOffset)
	}
	root := DatasetEnd(b)
	if sizePrefixed {
		b.FinishSizePrefixed(root)
	} else {
		b.Finish(root)
	}
	return b.FinishedBytes()
}

func TestDataset(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		buf := buildDataset(t, "", 0, nil, false)

		ds := GetRootAsDataset(buf, 0)

		assert.Nil(t, ds.Name())
		assert.Equal(t, 0.0, ds.Radius())
		assert.Equal(t, 0, ds.CirclesLength())
		var c Circle
		assert.False(t, ds.Circles(&c, 0))
	})

	t.Run("Populated", func(t *testing.T) {
		circles := [][3]float64{
			{13.4, 52.5, 10},
			{-0.1, 51.5, 0},
			{2.35, 48.85, 7.5},
		}
		for _, sizePrefixed := range []bool{false, true} {
			buf := buildDataset(t, "capitals", 5, circles, sizePrefixed)

			var ds *Dataset
			if sizePrefixed {
				size := flatbuffers.GetUint32(buf)
				require.Equal(t, len(buf)-flatbuffers.SizeUint32, int(size))
				ds = GetSizePrefixedRootAsDataset(buf, 0)
			} else {
				ds = GetRootAsDataset(buf, 0)
			}

			assert.Equal(t, []byte("capitals"), ds.Name())
			assert.Equal(t, 5.0, ds.Radius())
			require.Equal(t, len(circles), ds.CirclesLength())
			for i := range circles {
				var c Circle
				require.True(t, ds.Circles(&c, i))
				assert.Equal(t, circles[i], [3]float64{c.X(), c.Y(), c.Radius()}, "circle %d", i)
			}
		}
	})
}
