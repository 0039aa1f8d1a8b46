// SPDX-License-Identifier: MIT

// Package config loads turnpath run settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/turnpath/cost"
	"github.com/katalvlaran/turnpath/maze"
)

// ErrInvalid wraps every validation failure reported by Config.Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk settings document. Zero-valued keys absent from
// the file keep the values from Default.
type Config struct {
	TurnPenalty int64  `yaml:"turn_penalty"` // cost per quarter-turn (default: 1000)
	StepCost    int64  `yaml:"step_cost"`    // cost per tile moved (default: 1)
	Facing      string `yaml:"facing"`       // initial heading: north|east|south|west (default: east)
	LogLevel    string `yaml:"log_level"`    // logrus level name (default: warning)
	AllPaths    bool   `yaml:"all_paths"`    // enumerate every optimal route
	Render      bool   `yaml:"render"`       // draw routes over the grid
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		TurnPenalty: cost.DefaultTurnPenalty,
		StepCost:    cost.DefaultStepCost,
		Facing:      "east",
		LogLevel:    "warning",
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML document over Default and validates the result.
// Unknown keys are rejected; an empty document yields Default.
func Parse(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every field is usable.
func (c Config) Validate() error {
	if err := c.CostModel().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Orientation(); err != nil {
		return fmt.Errorf("%w: facing: %w", ErrInvalid, err)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}
	return nil
}

// CostModel returns the cost model described by c.
func (c Config) CostModel() cost.Model {
	return cost.Model{TurnPenalty: c.TurnPenalty, StepCost: c.StepCost}
}

// Orientation parses the Facing field.
func (c Config) Orientation() (maze.Orientation, error) {
	return maze.ParseOrientation(c.Facing)
}

// Level parses the LogLevel field.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}
