// SPDX-License-Identifier: MIT

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/turnpath/config"
)

// flags collects command-line overrides for config.Config.
type flags struct {
	configPath string
	facing     string
	penalty    int64
	logLevel   string
	all        bool
	render     bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "turnpath",
		Short:        "Find the cheapest route through a maze where turning costs",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd())
	return root
}

// settings loads the config file (if any) and applies explicitly set flags.
func settings(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	set := cmd.Flags().Changed
	if set("facing") {
		cfg.Facing = f.facing
	}
	if set("penalty") {
		cfg.TurnPenalty = f.penalty
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if set("all") {
		cfg.AllPaths = f.all
	}
	if set("render") {
		cfg.Render = f.render
	}
	return cfg, cfg.Validate()
}

// newLogger returns a text logger on the command's stderr.
func newLogger(cmd *cobra.Command, lvl logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(lvl)
	return l
}
