/*
Package cells reads and writes the plaintext "cells" grid format.

A line whose first non-space character is '!' is a comment. Every other line is a row of
cells where 'O' is alive and any other character is dead. Rows may be shorter than the
widest row; the missing cells are dead.

An empty or whitespace-only line is rejected with ErrMalformedRow rather than treated as
a zero-width row.
*/
package cells

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	alive = 'O'
	dead  = '.'

	commentMarker = '!'

	// Header is the comment line written at the top of every saved file
	Header = "!Cell file created by go-life"

	maxLineSize = 1 << 20
)

// ErrMalformedRow is returned for rows that cannot be parsed
var ErrMalformedRow = errors.New("malformed row")

// line is a non-comment row with its 1-based position in the source
type line struct {
	num  int
	text string
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// scanText returns the current line without its CR terminator
func scanText(scanner *bufio.Scanner) string {
	return strings.TrimSuffix(scanner.Text(), "\r")
}

// readLines splits r into lines, dropping CR terminators
func readLines(r io.Reader) ([]string, error) {
	var (
		lines   []string
		scanner = newScanner(r)
	)
	for scanner.Scan() {
		lines = append(lines, scanText(scanner))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[readLines] failed to read cell data")
	}
	return lines, nil
}

// classify reports whether text is a comment, or a malformed row when it is blank
func classify(num int, text string) (comment bool, err error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false, errors.Wrapf(ErrMalformedRow, "line %d is empty", num)
	}
	return trimmed[0] == commentMarker, nil
}

// rows returns the non-comment lines
func rows(lines []string) ([]line, error) {
	var out []line
	for i, text := range lines {
		comment, err := classify(i+1, text)
		if err != nil {
			return nil, err
		}
		if comment {
			continue
		}
		out = append(out, line{num: i + 1, text: text})
	}
	return out, nil
}

// Load parses a complete cell file into a new grid sized to fit it exactly
func Load(r io.Reader) (*model.Grid, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, errors.Wrap(err, "[Load]")
	}

	// First pass sizes the grid
	data, err := rows(lines)
	if err != nil {
		return nil, errors.Wrap(err, "[Load]")
	}
	width := 0
	for _, row := range data {
		width = max(width, len(row.text))
	}
	if len(data) == 0 || width == 0 {
		return nil, errors.Wrap(ErrMalformedRow, "[Load] no cell rows found")
	}

	// Second pass fills it
	g := model.NewGrid(width, len(data))
	for y, row := range data {
		for x := range len(row.text) {
			if row.text[x] == alive {
				if err := g.Set(x, y, true); err != nil {
					return nil, errors.Wrapf(err, "[Load] line %d", row.num)
				}
			}
		}
	}
	return g, nil
}

// Import merges a cell file into g without changing its dimensions. Reading stops once the
// grid's height in rows has been collected and characters past its width are skipped.
// Cells a row covers are overwritten; the rest keep their state. On error g is left untouched.
func Import(g *model.Grid, r io.Reader) error {
	if err := g.Validate(); err != nil {
		return errors.Wrap(err, "[Import]")
	}

	var (
		data    []line
		num     int
		scanner = newScanner(r)
	)
	for len(data) < g.GetHeight() && scanner.Scan() {
		num++
		text := scanText(scanner)
		comment, err := classify(num, text)
		if err != nil {
			return errors.Wrap(err, "[Import]")
		}
		if !comment {
			data = append(data, line{num: num, text: text})
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "[Import] failed to read cell data")
	}

	// Rows are validated before the first write so a failure leaves g intact
	for y, row := range data {
		for x := range min(len(row.text), g.GetWidth()) {
			if err := g.Set(x, y, row.text[x] == alive); err != nil {
				return errors.Wrapf(err, "[Import] line %d", row.num)
			}
		}
	}
	return nil
}

// Save writes the header comment followed by one row per grid row
func Save(w io.Writer, g *model.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header + "\n"); err != nil {
		return errors.Wrap(err, "[Save] failed to write header")
	}

	row := make([]byte, g.GetWidth()+1)
	row[len(row)-1] = '\n'
	for y, states := range g.Rows() {
		for x, on := range states {
			row[x] = dead
			if on {
				row[x] = alive
			}
		}
		if _, err := bw.Write(row); err != nil {
			return errors.Wrapf(err, "[Save] failed to write row %d", y)
		}
	}
	return errors.Wrap(bw.Flush(), "[Save] failed to flush")
}
