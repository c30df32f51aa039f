package model

import (
	"strings"

	"github.com/pkg/errors"
)

// BoundaryPolicy decides how neighbor lookups past the grid edge are resolved
type BoundaryPolicy int

const (
	// Finite treats every cell beyond the edge as dead
	Finite BoundaryPolicy = iota
	// Toroidal wraps lookups to the opposite edge
	Toroidal
)

func (p BoundaryPolicy) String() string {
	switch p {
	case Finite:
		return "finite"
	case Toroidal:
		return "toroidal"
	default:
		return "unknown"
	}
}

// ParseBoundaryPolicy maps a config value to a BoundaryPolicy
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "finite":
		return Finite, nil
	case "toroidal", "wrap":
		return Toroidal, nil
	default:
		return Finite, errors.Errorf("[ParseBoundaryPolicy] unknown boundary policy %q", s)
	}
}

// wrapUnit maps a coordinate one step past either edge onto the opposite edge.
// Only correct for |v| <= size; use modulo arithmetic for a general wrap.
func wrapUnit(v, size int) int {
	if v < 0 || v >= size {
		if v < 0 {
			v = -v
		}
		return size - v
	}
	return v
}

/*
Neighbor reports whether the cell at (x, y) is alive as seen from a neighbor query.

Under Finite any coordinate outside the grid reads as dead. Under Toroidal an out of
range coordinate is remapped to width-|x| (height-|y| for rows), which is only valid for
coordinates at most one cell past an edge. Anything further out still reads as dead.
*/
func Neighbor(g *Grid, x, y int, policy BoundaryPolicy) bool {
	if policy == Toroidal {
		x = wrapUnit(x, g.width)
		y = wrapUnit(y, g.height)
	}
	if !g.InBounds(x, y) {
		return false
	}
	return g.cells[y][x]
}

// NeighborCount returns the number of live cells among the 8 surrounding (x, y)
func NeighborCount(g *Grid, x, y int, policy BoundaryPolicy) (int, error) {
	if err := g.Validate(); err != nil {
		return 0, errors.Wrap(err, "[NeighborCount]")
	}
	if !g.InBounds(x, y) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[NeighborCount] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	return neighborCount(g, x, y, policy), nil
}

// neighborCount skips validation; callers guarantee a valid grid and coordinate
func neighborCount(g *Grid, x, y int, policy BoundaryPolicy) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue // Skip the cell itself
			}
			if Neighbor(g, x+dx, y+dy, policy) {
				count++
			}
		}
	}
	return count
}
