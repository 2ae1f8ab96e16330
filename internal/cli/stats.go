// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// statsCommand creates the stats command, which summarizes a dataset
// file and the shape of the index built over it.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [dataset file]",
		Short: "Print a summary of a dataset file and its index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runStats(ctx context.Context, path string) error {
	d, f, err := c.loadDataset(ctx, path)
	if err != nil {
		return err
	}
	s := d.Stats()

	w := tabwriter.NewWriter(c.out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "name:\t%s\n", f.Name)
	fmt.Fprintf(w, "version:\t%d.%d\n", f.Version.Major, f.Version.Patch)
	fmt.Fprintf(w, "circles:\t%d\n", d.Len())
	fmt.Fprintf(w, "bound:\t%s\n", formatBBox(d.Bound()))
	fmt.Fprintf(w, "radius:\t%s\n", formatFloats(d.Radius()))
	fmt.Fprintf(w, "max radius:\t%s\n", formatFloats(d.MaxRadius()))
	fmt.Fprintf(w, "nodes:\t%d\n", s.Nodes)
	fmt.Fprintf(w, "leaves:\t%d\n", s.Leaves)
	fmt.Fprintf(w, "depth:\t%d\n", s.Depth)
	fmt.Fprintf(w, "items:\t%d\n", s.Items)
	fmt.Fprintf(w, "straddlers:\t%d\n", s.Straddlers)
	fmt.Fprintf(w, "strays:\t%d\n", s.Strays)
	return w.Flush()
}
