package model

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// Stepper advances a grid one generation at a time. It owns the scratch buffer the next
// generation is written into, so a Stepper must not be shared between goroutines.
type Stepper struct {
	// Rule is the transition rule. The zero Rule is B/S, under which every cell dies;
	// use NewStepper for B3/S23.
	Rule rules.Rule

	// Workers splits each step over that many disjoint row ranges when greater than one
	Workers int

	scratch *Grid
}

// NewStepper returns a sequential B3/S23 stepper
func NewStepper() *Stepper {
	return &Stepper{Rule: rules.Conway}
}

// Step computes the next generation of g and returns its live cell count.
//
// Every cell is decided from the pre-step state of g only. The result is written to the
// scratch buffer whose storage is then swapped with g's, so g holds the next generation on
// return and the old cells become the scratch for the following step.
func (s *Stepper) Step(g *Grid, policy BoundaryPolicy) (int, error) {
	if err := g.Validate(); err != nil {
		return 0, errors.Wrap(err, "[Step]")
	}
	if !g.sameShape(s.scratch) {
		s.scratch = NewGrid(g.width, g.height)
	}

	var alive int
	if s.Workers > 1 && g.height > 1 {
		var err error
		if alive, err = s.stepParallel(g, policy); err != nil {
			return 0, errors.Wrap(err, "[Step]")
		}
	} else {
		alive = s.stepRows(g, policy, 0, g.height)
	}

	g.cells, s.scratch.cells = s.scratch.cells, g.cells
	return alive, nil
}

// stepRows writes rows [startRow, endRow) of the next generation into the scratch buffer
func (s *Stepper) stepRows(g *Grid, policy BoundaryPolicy, startRow, endRow int) (alive int) {
	next := s.scratch.cells
	for y := startRow; y < endRow; y++ {
		for x := range g.width {
			state := s.Rule.Apply(neighborCount(g, x, y, policy), g.cells[y][x])
			next[y][x] = state
			if state {
				alive++
			}
		}
	}
	return
}

// stepParallel calculates the next generation using one goroutine per row range
func (s *Stepper) stepParallel(g *Grid, policy BoundaryPolicy) (int, error) {
	var (
		eg            errgroup.Group
		numWorkers    = min(s.Workers, g.height)
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
		counts        = make([]int, numWorkers)
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			if !g.sameShape(s.scratch) {
				return errors.Wrapf(ErrInvalidDimensions, "rows [%d,%d) have no matching scratch rows", startRow, endRow)
			}
			counts[i] = s.stepRows(g, policy, startRow, endRow)
			return nil
		})
	}

	// Wait is also the barrier before the swap
	if err := eg.Wait(); err != nil {
		return 0, errors.Wrap(err, "failed to step row ranges")
	}

	alive := 0
	for _, c := range counts {
		alive += c
	}
	return alive, nil
}
