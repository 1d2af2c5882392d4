package domain

import (
	"fmt"
	"strings"
)

// Grid is a rectangular board; row 0 is the top physical row and the last
// row is the one discs fall onto first.
type Grid [][]Cell

func NewGrid(rows, cols int) Grid {
	grid := make(Grid, rows)
	for i := range grid {
		grid[i] = make([]Cell, cols)
	}
	return grid
}

// NewBoard returns an empty board of the physical 6x7 size.
func NewBoard() Grid {
	return NewGrid(Rows, Columns)
}

// ParseGrid builds a Grid from the wire representation.
// Ragged rows, null rows or values outside {0,1,2} yield ErrInvalidGrid.
// A JSON null decodes to a nil slice and is rejected; [] and [[]] are
// accepted as empty grids.
func ParseGrid(raw [][]int) (Grid, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: board is null", ErrInvalidGrid)
	}
	grid := make(Grid, len(raw))
	for r, row := range raw {
		if row == nil {
			return nil, fmt.Errorf("%w: row %d is null", ErrInvalidGrid, r)
		}
		if len(row) != len(raw[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidGrid, r, len(row), len(raw[0]))
		}
		grid[r] = make([]Cell, len(row))
		for c, v := range row {
			cell, err := ParseCell(v)
			if err != nil {
				return nil, fmt.Errorf("at (%d,%d): %w", r, c, err)
			}
			grid[r][c] = cell
		}
	}
	return grid, nil
}

// Validate checks the rectangular and value invariants of a Grid that was
// not produced by ParseGrid.
func (g Grid) Validate() error {
	cols := g.Cols()
	for r, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidGrid, r, len(row), cols)
		}
		for c, cell := range row {
			if !cell.Valid() {
				return fmt.Errorf("%w: cell value %d at (%d,%d)", ErrInvalidGrid, int(cell), r, c)
			}
		}
	}
	return nil
}

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Ints converts the grid back to the wire representation.
func (g Grid) Ints() [][]int {
	out := make([][]int, len(g))
	for r, row := range g {
		out[r] = make([]int, len(row))
		for c, cell := range row {
			out[r][c] = int(cell)
		}
	}
	return out
}

// this creates a deep copy of the grid
func (g Grid) Clone() Grid {
	newGrid := make(Grid, len(g))
	for i := range g {
		newGrid[i] = make([]Cell, len(g[i]))
		copy(newGrid[i], g[i])
	}
	return newGrid
}

// LowestEmptyRow scans the column from the bottom up and returns the first
// empty row. ok is false when the column is full or out of range.
func (g Grid) LowestEmptyRow(column int) (row int, ok bool) {
	if column < 0 || column >= g.Cols() {
		return -1, false
	}
	for r := len(g) - 1; r >= 0; r-- {
		if g[r][column] == Empty {
			return r, true
		}
	}
	return -1, false
}

func (g Grid) HasRoom(column int) bool {
	_, ok := g.LowestEmptyRow(column)
	return ok
}

// DropDisc fills the lowest empty cell of column with player and returns
// the row it landed on.
func (g Grid) DropDisc(column int, player Cell) (int, error) {
	if !player.IsPlayer() {
		return -1, ErrInvalidPlayer
	}
	if column < 0 || column >= g.Cols() {
		return -1, ErrInvalidMove
	}
	row, ok := g.LowestEmptyRow(column)
	if !ok {
		return -1, ErrColumnFull
	}
	g[row][column] = player
	return row, nil
}

func (g Grid) IsFull() bool {
	for c := 0; c < g.Cols(); c++ {
		if g.HasRoom(c) {
			return false
		}
	}
	return true
}

// Key is a compact, dimension-qualified encoding used for cache lookups.
func (g Grid) Key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d:", g.Rows(), g.Cols())
	for _, row := range g {
		for _, cell := range row {
			sb.WriteByte(byte('0' + cell))
		}
	}
	return sb.String()
}
