// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/gogama/maskquad"
	"github.com/gogama/maskquad/quadtree"
)

// Config is the contents of a maskquad TOML config file. Keys which
// are not set keep the library defaults.
//
//	[index]
//	max_depth = 6
//	max_children = 6
//	bounded = true
//	split = "exact"
//
//	[data]
//	radius = 5
type Config struct {
	Index IndexConfig `toml:"index"`
	Data  DataConfig  `toml:"data"`
}

// IndexConfig holds the [index] section of a config file. A max_depth
// of zero builds an index which never subdivides.
type IndexConfig struct {
	MaxDepth    *int   `toml:"max_depth"`
	MaxChildren int    `toml:"max_children"`
	Bounded     *bool  `toml:"bounded"`
	Split       string `toml:"split"`
}

// DataConfig holds the [data] section of a config file.
type DataConfig struct {
	Radius float64 `toml:"radius"`
}

// loadConfig reads a TOML config file. An empty path yields the zero
// Config.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	return &cfg, nil
}

// options converts the config into dataset options.
func (cfg *Config) options() (*maskquad.Options, error) {
	split, err := quadtree.ParseSplitMode(cfg.Index.Split)
	if err != nil {
		return nil, err
	}
	var depth int
	if d := cfg.Index.MaxDepth; d != nil {
		switch {
		case *d < 0:
			return nil, fmt.Errorf("invalid max depth %d: must be non-negative", *d)
		case *d == 0:
			depth = maskquad.FlatIndex
		default:
			depth = *d
		}
	}
	return &maskquad.Options{
		Radius:      cfg.Data.Radius,
		MaxDepth:    depth,
		MaxChildren: cfg.Index.MaxChildren,
		Points:      cfg.Index.Bounded != nil && !*cfg.Index.Bounded,
		Split:       split,
	}, nil
}

// indexFlags holds the global flags which override the config file.
type indexFlags struct {
	radius      float64
	maxDepth    int
	maxChildren int
	bounded     bool
	split       string
}

func (f *indexFlags) register(flags *pflag.FlagSet) {
	flags.Float64Var(&f.radius, "radius", 0, "default circle radius (default 5)")
	flags.IntVar(&f.maxDepth, "max-depth", 0, "quadtree depth limit, 0 to never subdivide (default 6)")
	flags.IntVar(&f.maxChildren, "max-children", 0, "quadtree leaf capacity (default 6)")
	flags.BoolVar(&f.bounded, "bounded", true, "use a bounds quadtree instead of a point quadtree")
	flags.StringVar(&f.split, "split", "", `region split mode, "exact" or "floor" (default exact)`)
}

// apply overlays the flags which were set on the command line onto cfg
// and returns the resulting dataset options.
func (f *indexFlags) apply(flags *pflag.FlagSet, cfg *Config) (*maskquad.Options, error) {
	if flags.Changed("radius") {
		cfg.Data.Radius = f.radius
	}
	if flags.Changed("max-depth") {
		d := f.maxDepth
		cfg.Index.MaxDepth = &d
	}
	if flags.Changed("max-children") {
		cfg.Index.MaxChildren = f.maxChildren
	}
	if flags.Changed("bounded") {
		b := f.bounded
		cfg.Index.Bounded = &b
	}
	if flags.Changed("split") {
		cfg.Index.Split = f.split
	}
	return cfg.options()
}
