package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws grids as block characters
type TerminalRenderer struct {
	// Out defaults to stdout
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) error {
	w := bufio.NewWriter(r.out())
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return errors.Wrap(w.Flush(), "[Display] failed to flush grid")
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	return errors.Wrap(cmd.Run(), "[Clear] failed to clear terminal")
}
