// Copyright 2023 The maskquad (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the maskquad command-line interface.
//
// The CLI packs CSV point data into dataset files and runs window
// queries and index statistics against them. It is built using cobra,
// reads optional settings from a TOML file, and logs to stderr via the
// charmbracelet/log library.
//
// # Commands
//
//   - pack: Convert a CSV file of circles into a dataset file
//   - query: Print the circles in a dataset file overlapping a box
//   - stats: Print a summary of a dataset file and its index
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The
// logger is passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogama/maskquad"
)

const appName = "maskquad"

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "devel"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer

	verbose    bool
	configPath string
	index      indexFlags
	opts       *maskquad.Options
}

// New creates a new CLI instance which prints command output to out
// and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "maskquad packs and queries quadtree-indexed circle datasets",
		Long:         `maskquad converts point data into compact dataset files and answers window queries against them using a region quadtree.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			if c.configPath != "" {
				c.Logger.Debug("Loaded config", "path", c.configPath)
			}
			c.opts, err = c.index.apply(cmd.Flags(), cfg)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVarP(&c.configPath, "config", "c", "", "TOML config `file`")
	c.index.register(flags)

	root.AddCommand(c.packCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.statsCommand())

	return root
}
