package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// Grid represents the game board
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Resize reallocates the grid to new dimensions. Previous contents are dropped.
func (g *Grid) Resize(width, height int) {
	g.width = max(0, width)
	g.height = max(0, height)
	g.cells = make([][]bool, g.height)
	for i := range g.cells {
		g.cells[i] = make([]bool, g.width)
	}
}

// Clear kills every cell, keeping the dimensions
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// Validate reports ErrInvalidDimensions for a zero-sized grid
func (g *Grid) Validate() error {
	if g == nil || g.width <= 0 || g.height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	g.cells[y][x] = alive
	return nil
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Get] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	return g.cells[y][x], nil
}

// Toggle flips a cell and returns its new state
func (g *Grid) Toggle(x, y int) (bool, error) {
	if !g.InBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Toggle] (%d,%d) on %dx%d grid", x, y, g.width, g.height)
	}
	g.cells[y][x] = !g.cells[y][x]
	return g.cells[y][x], nil
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Rows returns a copy of the cells indexed [y][x]
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.height)
	for y := range g.height {
		rows[y] = append([]bool(nil), g.cells[y]...)
	}
	return rows
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.width, g.height)
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// sameShape reports whether both grids share dimensions
func (g *Grid) sameShape(other *Grid) bool {
	return other != nil && g.width == other.width && g.height == other.height
}
