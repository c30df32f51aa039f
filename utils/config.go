package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	FrameRate      time.Duration `json:"frame_rate"`
	Boundary       string        `json:"boundary"`
	Rule           string        `json:"rule"`
	Seed           int64         `json:"seed"` // 0 picks a fresh seed
	PatternFile    string        `json:"pattern_file"`
	ImportFile     string        `json:"import_file"`
	SaveFile       string        `json:"save_file"`
	MaxGenerations int           `json:"max_generations"`
	UseParallel    bool          `json:"use_parallel"`
	Workers        int           `json:"workers"`
	StopWhenStable bool          `json:"stop_when_stable"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          20,
		Height:         20,
		FrameRate:      20 * time.Millisecond,
		Boundary:       model.Finite.String(),
		Rule:           rules.Conway.String(),
		MaxGenerations: 1000,
		StopWhenStable: true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks dimensions and the boundary and rule strings
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(model.ErrInvalidDimensions, "[Validate] %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] negative frame rate %v", c.FrameRate)
	}
	if _, err := c.BoundaryPolicy(); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	if _, err := c.TransitionRule(); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}

// BoundaryPolicy parses the configured boundary
func (c Config) BoundaryPolicy() (model.BoundaryPolicy, error) {
	return model.ParseBoundaryPolicy(c.Boundary)
}

// TransitionRule parses the configured rule
func (c Config) TransitionRule() (rules.Rule, error) {
	return rules.ParseRule(c.Rule)
}

// WorkerCount returns how many row ranges a step is split into
func (c Config) WorkerCount(numCPU int) int {
	if !c.UseParallel {
		return 1
	}
	if c.Workers > 0 {
		return c.Workers
	}
	return max(1, numCPU)
}
