package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	LivingCells          int
	Seed                 int64
	StartTime            time.Time
}

func NewStats(seed int64) *Stats {
	return &Stats{StartTime: time.Now(), Seed: seed}
}

// Update records one generation and the time it took
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.LivingCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.TotalGenerations <= 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Density returns the share of living cells on a width x height grid as a percentage
func (s *Stats) Density(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return float64(s.LivingCells) / float64(width*height) * 100
}
