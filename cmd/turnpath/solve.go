// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/turnpath"
	"github.com/katalvlaran/turnpath/config"
	"github.com/katalvlaran/turnpath/maze"
	"github.com/katalvlaran/turnpath/search"
	"github.com/katalvlaran/turnpath/tiles"
)

func newSolveCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "solve <maze>",
		Short: "Solve the maze in the given file",
		Long: `Solve reads a maze of '#' walls, '.' floor, one 'S' and one 'E'.

By default the agent may turn in place before setting off; every start
heading is tried and the cheapest total wins. With --all, the search
keeps the given facing and lists every optimal arrival instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings(cmd, f)
			if err != nil {
				return err
			}
			return runSolve(cmd, args[0], cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML settings file")
	fs.StringVarP(&f.facing, "facing", "f", "east", "initial heading (north|east|south|west)")
	fs.Int64Var(&f.penalty, "penalty", 1000, "cost per quarter-turn")
	fs.StringVar(&f.logLevel, "log-level", "warning", "logrus level (debug|info|warning|error)")
	fs.BoolVarP(&f.all, "all", "a", false, "list every optimal route for the given facing")
	fs.BoolVarP(&f.render, "render", "r", false, "draw routes over the maze")
	return cmd
}

func runSolve(cmd *cobra.Command, path string, cfg config.Config) error {
	lvl, _ := cfg.Level()
	facing, _ := cfg.Orientation()
	log := newLogger(cmd, lvl).WithField("maze", path)

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	g, err := maze.Read(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	h, w := g.Dimensions()
	log.WithFields(logrus.Fields{"height": h, "width": w, "floor": g.FloorCount()}).Info("maze loaded")

	eng, err := turnpath.New(g, search.WithCostModel(cfg.CostModel()), search.WithLogger(log))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.AllPaths {
		return printAll(out, eng, facing, cfg.Render)
	}
	return printBest(cmd, out, eng, facing, cfg.Render)
}

func printBest(cmd *cobra.Command, out io.Writer, eng *turnpath.Engine, facing maze.Orientation, render bool) error {
	best, err := eng.Solve(cmd.Context(), facing)
	if err != nil {
		return err
	}
	if !best.Found {
		fmt.Fprintln(out, "no route")
		return nil
	}
	fmt.Fprintf(out, "start: %v (initial turn %d)\n", best.Start, best.InitialTurn)
	fmt.Fprintf(out, "route cost: %d\n", best.Result.Cost)
	fmt.Fprintf(out, "total: %d\n", best.Total)
	fmt.Fprintf(out, "steps: %d\n", len(best.Result.Route)-1)
	if render {
		fmt.Fprint(out, eng.Render(best.Result.Route))
	}
	return nil
}

func printAll(out io.Writer, eng *turnpath.Engine, facing maze.Orientation, render bool) error {
	all, err := eng.FindAllOptimalPaths(facing)
	if err != nil {
		return err
	}
	if !all.Found() {
		fmt.Fprintln(out, "no route")
		return nil
	}
	distinct := tiles.Unique(all.Routes)
	fmt.Fprintf(out, "cost: %d\n", all.Cost)
	fmt.Fprintf(out, "routes: %d (%d distinct)\n", len(all.Routes), len(distinct))
	fmt.Fprintf(out, "tiles on routes: %d\n", tiles.CountOnRoutes(distinct...))
	fmt.Fprintf(out, "adjacent tiles: %d\n", eng.CountAdjacentTiles(distinct...))
	if render {
		fmt.Fprint(out, eng.Render(distinct...))
	}
	return nil
}
