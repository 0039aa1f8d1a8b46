// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnpath/cost"
	"github.com/katalvlaran/turnpath/maze"
)

const forkMaze = "#####\n#.E.#\n#.#.#\n#.S.#\n#####\n"

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSolve_Best(t *testing.T) {
	path := writeFile(t, "fork.txt", forkMaze)

	out, _, err := run(t, "solve", path, "--facing", "west")
	require.NoError(t, err)
	assert.Contains(t, out, "start: West (initial turn 0)")
	assert.Contains(t, out, "total: 2004")
	assert.Contains(t, out, "steps: 4")
}

func TestSolve_AllRender(t *testing.T) {
	path := writeFile(t, "fork.txt", forkMaze)

	out, _, err := run(t, "solve", path, "-f", "north", "--all", "--render")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 3004")
	assert.Contains(t, out, "routes: 2 (2 distinct)")
	assert.Contains(t, out, "tiles on routes: 8")
	assert.Contains(t, out, "adjacent tiles: 0")
	assert.Contains(t, out, "#OOO#\n#O#O#\n#OOO#\n")
}

func TestSolve_ConfigAndOverride(t *testing.T) {
	path := writeFile(t, "fork.txt", forkMaze)
	cfg := writeFile(t, "turnpath.yaml", "turn_penalty: 10\nfacing: north\nall_paths: true\n")

	out, _, err := run(t, "solve", path, "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 34")

	out, _, err = run(t, "solve", path, "--config", cfg, "--penalty", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 304")
}

func TestSolve_DebugLogging(t *testing.T) {
	path := writeFile(t, "corridor.txt", "#####\n#S.E#\n#####\n")

	out, logs, err := run(t, "solve", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "total: 2")
	assert.Contains(t, logs, "maze loaded")
	assert.Contains(t, logs, "search: goal reached")
}

func TestSolve_NoRoute(t *testing.T) {
	path := writeFile(t, "sealed.txt", "#######\n#.#S#E#\n#######\n")

	out, _, err := run(t, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "no route\n", out)
}

func TestSolve_Errors(t *testing.T) {
	bad := writeFile(t, "bad.txt", "#S#\n#E#x\n")

	_, _, err := run(t, "solve", bad)
	assert.ErrorIs(t, err, maze.ErrParse)

	_, _, err = run(t, "solve", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	good := writeFile(t, "ok.txt", forkMaze)
	_, _, err = run(t, "solve", good, "--facing", "up")
	assert.Error(t, err)

	_, _, err = run(t, "solve", good, "--penalty", "4611686018427387904")
	assert.ErrorIs(t, err, cost.ErrBadTurnPenalty)

	_, _, err = run(t, "solve")
	assert.Error(t, err, "maze argument required")
}
