package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/cells"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles the state the driver loop needs between ticks
type game struct {
	grid     *model.Grid
	stepper  *model.Stepper
	policy   model.BoundaryPolicy
	renderer *model.TerminalRenderer
	stats    *utils.Stats
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*game, error) {
	policy, err := config.BoundaryPolicy()
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}
	rule, err := config.TransitionRule()
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	seed := config.Seed
	if seed == 0 {
		seed = model.NewSeed()
	}

	var grid *model.Grid
	if config.PatternFile != "" {
		if grid, err = cells.LoadFile(config.PatternFile); err != nil {
			return nil, errors.Wrap(err, "[initializeGame]")
		}
	} else {
		grid = model.NewGrid(config.Width, config.Height)
		model.RandomizeSeed(grid, seed)
	}

	if config.ImportFile != "" {
		if err = cells.ImportFile(grid, config.ImportFile); err != nil {
			return nil, errors.Wrap(err, "[initializeGame]")
		}
	}

	return &game{
		grid:     grid,
		stepper:  &model.Stepper{Rule: rule, Workers: config.WorkerCount(runtime.NumCPU())},
		policy:   policy,
		renderer: &model.TerminalRenderer{},
		stats:    utils.NewStats(seed),
	}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, g *game) {
	fmt.Printf("Rule: %s | Boundary: %s | Seed: %d | Workers: %d\n",
		g.stepper.Rule, g.policy, g.stats.Seed, max(1, g.stepper.Workers))
	fmt.Printf("Grid: %dx%d | Initial living cells: %d | Interval: %v\n",
		g.grid.GetWidth(), g.grid.GetHeight(), g.grid.CountLivingCells(), config.FrameRate)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, status string) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.stats.TotalGenerations, g.stats.LivingCells,
		g.stats.Density(g.grid.GetWidth(), g.grid.GetHeight()), status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, time.Since(g.stats.StartTime).Seconds())
	fmt.Println()
}

// gameStatus labels the generation for display
func gameStatus(livingCells int, stable bool) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case stable:
		return "Stable"
	default:
		return "Active"
	}
}

// checkStopConditions determines if the driver should stop stepping
func checkStopConditions(livingCells, generation int, stable bool, config utils.Config) (bool, string) {
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	if !config.StopWhenStable {
		return false, ""
	}
	if livingCells == 0 {
		return true, "extinction"
	}
	if stable {
		return true, "still life"
	}
	return false, ""
}

// saveGame writes the final grid when a save file is configured
func saveGame(config utils.Config, g *game) error {
	if config.SaveFile == "" {
		return nil
	}
	if err := cells.SaveFile(g.grid, config.SaveFile); err != nil {
		return errors.Wrap(err, "[saveGame]")
	}
	fmt.Printf("Saved generation %d to %s\n", g.stats.TotalGenerations, config.SaveFile)
	return nil
}
