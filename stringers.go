// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package maskquad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// String returns the circle formatted as "Circle{[Lon,Lat],Radius:R}".
func (c Circle) String() string {
	var b strings.Builder
	b.WriteString("Circle{")
	b.WriteString(formatPoint(c.Point))
	b.WriteString(",Radius:")
	b.WriteString(formatFloat(c.Radius))
	b.WriteByte('}')
	return b.String()
}

// String returns a summary description of the dataset.
func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset{Bound:%s,Len:%d,Radius:%s,MaxRadius:%s}",
		formatBound(d.bound), len(d.circles), formatFloat(d.radius), formatFloat(d.maxRadius))
}

// String returns a summary description of the file.
func (f *File) String() string {
	return fmt.Sprintf("File{Version:%d.%d,Name:%q,Radius:%s,NumCircles:%d}",
		f.Version.Major, f.Version.Patch, f.Name, formatFloat(f.Radius), len(f.Circles))
}

func formatBound(b orb.Bound) string {
	return "[" + formatPoint(b.Min) + "," + formatPoint(b.Max) + "]"
}

func formatPoint(p orb.Point) string {
	return "[" + formatFloat(p.Lon()) + "," + formatFloat(p.Lat()) + "]"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
