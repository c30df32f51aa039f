package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			log.Fatalf("failed to load configuration: %+v", err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	g, err := initializeGame(config)
	if err != nil {
		log.Fatalf("failed to initialize game: %+v", err)
	}
	displayGameInfo(config, g)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(max(config.FrameRate, time.Millisecond))
	defer ticker.Stop()

	var (
		generation    = 0
		livingCells   = g.grid.CountLivingCells()
		lastHash      = g.grid.GetGridHash()
		lastFrameTime = time.Now()
	)
	g.stats.Update(generation, livingCells, 0)

	for {
		if err = g.renderer.Clear(); err != nil {
			log.Printf("failed to clear terminal: %v", err)
		}

		stable := generation > 0 && g.grid.GetGridHash() == lastHash
		displayGameStatus(g, gameStatus(livingCells, stable))
		if err = g.renderer.Display(g.grid); err != nil {
			log.Printf("failed to render grid: %v", err)
		}

		if stop, reason := checkStopConditions(livingCells, generation, stable, config); stop {
			fmt.Printf("\nStopping: %s\n", reason)
			break
		}

		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(g.stats.StartTime).Seconds())
			if err = saveGame(config, g); err != nil {
				log.Fatalf("failed to save game: %+v", err)
			}
			return
		case <-ticker.C:
		}

		lastHash = g.grid.GetGridHash()
		if livingCells, err = g.stepper.Step(g.grid, g.policy); err != nil {
			log.Fatalf("failed to step generation %d: %+v", generation, err)
		}
		generation++

		frameStart := time.Now()
		g.stats.Update(generation, livingCells, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart
	}

	if err = saveGame(config, g); err != nil {
		log.Fatalf("failed to save game: %+v", err)
	}
}
