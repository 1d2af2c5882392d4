package domain

// HasFourInARow reports whether any ToWin equal, non-empty cells line up
// horizontally, vertically or on either diagonal. Directions are scanned in
// that order, rows top to bottom and columns left to right, and the first
// alignment found ends the scan. Loop bounds come from the grid, so grids
// smaller than ToWin in a dimension simply have no alignment there. The grid
// is expected to be rectangular (see Grid.Validate); cells missing from a
// short row never count towards an alignment.
func HasFourInARow(grid Grid) bool {
	rows := grid.Rows()
	cols := grid.Cols()

	// horizontal
	for r := 0; r < rows; r++ {
		for c := 0; c+ToWin-1 < cols; c++ {
			if alignedFrom(grid, r, c, 0, 1) {
				return true
			}
		}
	}

	// vertical
	for c := 0; c < cols; c++ {
		for r := 0; r+ToWin-1 < rows; r++ {
			if alignedFrom(grid, r, c, 1, 0) {
				return true
			}
		}
	}

	// diagonal \ (down-right)
	for r := 0; r+ToWin-1 < rows; r++ {
		for c := 0; c+ToWin-1 < cols; c++ {
			if alignedFrom(grid, r, c, 1, 1) {
				return true
			}
		}
	}

	// diagonal / (up-right), starting from the lower end
	for r := ToWin - 1; r < rows; r++ {
		for c := 0; c+ToWin-1 < cols; c++ {
			if alignedFrom(grid, r, c, -1, 1) {
				return true
			}
		}
	}

	return false
}

// alignedFrom checks the ToWin cells starting at (row, col) stepping by
// (deltaRow, deltaCol). Row bounds are guaranteed by the callers; column
// bounds are checked per row.
func alignedFrom(grid Grid, row, col, deltaRow, deltaCol int) bool {
	if col >= len(grid[row]) {
		return false
	}
	v := grid[row][col]
	if v == Empty {
		return false
	}
	for i := 1; i < ToWin; i++ {
		r, c := row+i*deltaRow, col+i*deltaCol
		if c >= len(grid[r]) || grid[r][c] != v {
			return false
		}
	}
	return true
}

// CleanupMask lists, for every cell, whether it holds a disc. Cells are
// walked row by row from the top-left and the result is reversed, so index
// 0 is the bottom-right slot and the last index is the top-left slot.
func CleanupMask(grid Grid) []bool {
	mask := make([]bool, 0, grid.Rows()*grid.Cols())
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			mask = append(mask, grid[r][c] != Empty)
		}
	}

	for i, j := 0, len(mask)-1; i < j; i, j = i+1, j-1 {
		mask[i], mask[j] = mask[j], mask[i]
	}
	return mask
}
