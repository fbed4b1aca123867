package board

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// OpenCell marks a fillable cell in the structure text format. Any other
// character is a blocked cell, and rows shorter than the widest row are
// blocked past their last character.
const OpenCell = '_'

var ErrEmptyGrid = errors.New("grid has no rows")

// A Grid is the blocked/open cell structure of a puzzle. It is built once
// from the structure file and never mutated.
type Grid struct {
	height int
	width  int
	open   [][]bool
}

// NewGrid builds a grid from an explicit open-cell matrix. The matrix must
// be rectangular and nonempty.
func NewGrid(open [][]bool) (Grid, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	width := len(open[0])
	cells := make([][]bool, len(open))
	for i, row := range open {
		if len(row) != width {
			return Grid{}, fmt.Errorf("grid is not rectangular: row %d has %d cells, want %d",
				i, len(row), width)
		}
		cells[i] = append([]bool(nil), row...)
	}
	return Grid{height: len(open), width: width, open: cells}, nil
}

// ParseGrid turns the lines of a structure file into a Grid. The grid is as
// wide as the longest line; short lines are blocked past their end.
func ParseGrid(lines []string) (Grid, error) {
	if len(lines) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if width == 0 {
		return Grid{}, ErrEmptyGrid
	}
	open := make([][]bool, len(lines))
	for i, line := range lines {
		open[i] = make([]bool, width)
		for j := 0; j < len(line); j++ {
			open[i][j] = line[j] == OpenCell
		}
	}
	return Grid{height: len(lines), width: width, open: open}, nil
}

// LoadGrid reads a structure file from disk.
func LoadGrid(filename string) (Grid, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Grid{}, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Grid{}, err
	}
	return ParseGrid(lines)
}

// Height is the number of rows in the grid.
func (g Grid) Height() int {
	return g.height
}

// Width is the number of columns in the grid.
func (g Grid) Width() int {
	return g.width
}

// Open returns whether the cell at row, col is fillable.
func (g Grid) Open(row, col int) bool {
	return g.open[row][col]
}
