// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/gogama/maskquad"
)

// packOpts holds the command-line flags for the pack command.
type packOpts struct {
	output string // dataset file path
	name   string // dataset name stored in the file
}

// packCommand creates the pack command, which converts a CSV file of
// circles into a dataset file.
func (c *CLI) packCommand() *cobra.Command {
	var opts packOpts

	cmd := &cobra.Command{
		Use:   "pack [csv file]",
		Short: "Pack a CSV file of lng,lat[,radius] rows into a dataset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPack(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output dataset `file`")
	cmd.Flags().StringVar(&opts.name, "name", "", "dataset name (default: none)")
	if err := cmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}

	return cmd
}

func (c *CLI) runPack(ctx context.Context, input string, opts packOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	circles, err := readCircles(ctx, in)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	logger.Debug("Read circles", "path", input, "count", len(circles))

	d, err := maskquad.NewDataset(circles, c.opts)
	if err != nil {
		return err
	}
	logger.Debug("Built index", "dataset", d, "stats", fmt.Sprintf("%+v", d.Stats()))

	out, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	n, err := maskquad.WriteFile(out, opts.name, d)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	prog.done("Packed dataset", "path", opts.output, "circles", d.Len(), "bytes", n)
	return nil
}

// checkEvery is how many CSV rows are read between checks for
// cancellation.
const checkEvery = 4096

// readCircles reads CSV rows of the form lng,lat or lng,lat,radius.
// The first row is skipped if its longitude is not a number, so a
// header row is allowed. An empty radius field means the default
// radius.
func readCircles(ctx context.Context, r io.Reader) ([]maskquad.Circle, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var circles []maskquad.Circle
	for row := 1; ; row++ {
		if row%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		if len(rec) < 2 || len(rec) > 3 {
			return nil, fmt.Errorf("row %d: expected 2 or 3 fields, got %d", row, len(rec))
		}
		lng, err := strconv.ParseFloat(rec[0], 64)
		if err != nil && row == 1 {
			continue // header
		} else if err != nil {
			return nil, fmt.Errorf("row %d: invalid longitude %q", row, rec[0])
		}
		lat, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid latitude %q", row, rec[1])
		}
		var radius float64
		if len(rec) == 3 && rec[2] != "" {
			if radius, err = strconv.ParseFloat(rec[2], 64); err != nil {
				return nil, fmt.Errorf("row %d: invalid radius %q", row, rec[2])
			}
		}

		circles = append(circles, maskquad.Circle{Point: orb.Point{lng, lat}, Radius: radius})
	}

	return circles, nil
}
