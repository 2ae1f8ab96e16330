// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/gogama/maskquad"
)

// queryOpts holds the command-line flags for the query command.
type queryOpts struct {
	bbox string  // minLng,minLat,maxLng,maxLat; empty means the dataset bound
	pad  float64 // amount to grow the box by on each side
}

// queryCommand creates the query command, which prints every circle in
// a dataset file whose centre lies within a padded box.
func (c *CLI) queryCommand() *cobra.Command {
	var opts queryOpts

	cmd := &cobra.Command{
		Use:   "query [dataset file]",
		Short: "Print the circles in a dataset file within a box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runQuery(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.bbox, "bbox", "", "query box as `minLng,minLat,maxLng,maxLat` (default: dataset bound)")
	cmd.Flags().Float64Var(&opts.pad, "pad", 0, "grow the query box by this much on every side")

	return cmd
}

func (c *CLI) runQuery(ctx context.Context, path string, opts queryOpts) error {
	logger := loggerFromContext(ctx)

	d, _, err := c.loadDataset(ctx, path)
	if err != nil {
		return err
	}

	b := d.Bound()
	if opts.bbox != "" {
		if b, err = parseBBox(opts.bbox); err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	circles := d.Search(b, opts.pad)
	prog.done("Searched dataset", "bbox", formatBBox(b), "pad", opts.pad, "matches", len(circles))

	for i := range circles {
		fmt.Fprintln(c.out, formatCircle(circles[i]))
	}
	return nil
}

// loadDataset reads a dataset file and builds its index using the
// configured options.
func (c *CLI) loadDataset(ctx context.Context, path string) (*maskquad.Dataset, *maskquad.File, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()

	f, err := maskquad.ReadFile(in)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	d, err := f.Dataset(c.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	prog.done("Loaded dataset", "path", path, "circles", d.Len())
	return d, f, nil
}

// parseBBox parses a box given as minLng,minLat,maxLng,maxLat.
func parseBBox(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("invalid bbox %q: expected 4 comma-separated numbers", s)
	}
	var v [4]float64
	for i := range parts {
		var err error
		if v[i], err = strconv.ParseFloat(strings.TrimSpace(parts[i]), 64); err != nil {
			return orb.Bound{}, fmt.Errorf("invalid bbox %q: %q is not a number", s, parts[i])
		}
	}
	if v[0] > v[2] || v[1] > v[3] {
		return orb.Bound{}, fmt.Errorf("invalid bbox %q: min exceeds max", s)
	}
	return orb.Bound{Min: orb.Point{v[0], v[1]}, Max: orb.Point{v[2], v[3]}}, nil
}

func formatBBox(b orb.Bound) string {
	return formatFloats(b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat())
}

// formatCircle formats a circle as a CSV row readable by pack.
func formatCircle(c maskquad.Circle) string {
	return formatFloats(c.Point.Lon(), c.Point.Lat(), c.Radius)
}

func formatFloats(f ...float64) string {
	s := make([]string, len(f))
	for i := range f {
		s[i] = strconv.FormatFloat(f[i], 'f', -1, 64)
	}
	return strings.Join(s, ",")
}
