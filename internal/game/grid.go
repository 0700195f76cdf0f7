// Package game implements the 2048 rules: the grid shift/merge engine,
// the animation pool that shift operations feed, and the state machine
// that drives a whole session from title screen to game over.
package game

import "math/rand"

// GridSize is the board dimension. The board is always square.
const GridSize = 4

// Grid is the tile board. Zero means empty; every non-zero value is a
// power of two >= 2.
type Grid [GridSize][GridSize]int

// Direction is a player move.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// transpose mirrors the grid across its main diagonal, in place.
func (g *Grid) transpose() {
	for row := 1; row < GridSize; row++ {
		for col := 0; col < row; col++ {
			g[row][col], g[col][row] = g[col][row], g[row][col]
		}
	}
}

// reverseRows reverses each row, in place.
func (g *Grid) reverseRows() {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize/2; col++ {
			g[row][col], g[row][GridSize-col-1] = g[row][GridSize-col-1], g[row][col]
		}
	}
}

// reverseCols reverses each column, in place.
func (g *Grid) reverseCols() {
	for row := 0; row < GridSize/2; row++ {
		for col := 0; col < GridSize; col++ {
			g[row][col], g[GridSize-row-1][col] = g[GridSize-row-1][col], g[row][col]
		}
	}
}

// rotLeft rotates the grid 90 degrees counter-clockwise, in place.
func (g *Grid) rotLeft() {
	g.transpose()
	g.reverseCols()
}

// rotRight rotates the grid 90 degrees clockwise, in place.
func (g *Grid) rotRight() {
	g.transpose()
	g.reverseRows()
}

// shiftLeft slides and merges every row toward column 0.
//
// Each row keeps a settled pointer p (last merged or settled index) and
// a scan pointer c. A scanned tile merges into an equal settled tile
// (once per destination per pass: p advances past a fresh merge),
// slides up next to an unequal settled tile, or slides all the way
// into an empty prefix.
//
// Side effects: every move appends a motion descriptor to pool (grid
// coordinates; the pool drops extras silently when full) and zeroes the
// moved source cell in background, which starts as a copy of the
// pre-shift grid. Returns whether anything moved and the score gained
// from merges.
func shiftLeft(g *Grid, pool *AnimationPool, background *Grid) (changed bool, score int) {
	*background = *g

	for row := 0; row < GridSize; row++ {
		p := 0
		for c := 1; c < GridSize; c++ {
			val := g[row][c]
			if val == 0 {
				continue
			}

			switch {
			case g[row][p] == val:
				// Merge into the settled tile.
				merged := val * 2
				g[row][p] = merged
				g[row][c] = 0
				score += merged
				changed = true
				pool.Add(row, c, row, p, val, merged)
				background[row][c] = 0
				p++
			case g[row][p] != 0:
				// Unequal neighbor: slide up next to it, unless the
				// tiles already touch.
				if p+1 < c {
					g[row][p+1] = val
					g[row][c] = 0
					changed = true
					pool.Add(row, c, row, p+1, val, val)
					background[row][c] = 0
				}
				p++
			default:
				// Empty prefix: slide all the way to the settled slot.
				// p stays put; the now-filled slot is handled by the
				// nonzero branches on the next scanned tile.
				g[row][p] = val
				g[row][c] = 0
				changed = true
				pool.Add(row, c, row, p, val, val)
				background[row][c] = 0
			}
		}
	}
	return changed, score
}

// Shift performs a move in the given direction. All four directions
// reuse shiftLeft: the grid is reflected or rotated into shift-left
// orientation, shifted, and transformed back, with the recorded motion
// coordinates and the background snapshot fixed up to match. The
// background comes back in board orientation even when nothing moved.
func Shift(g *Grid, dir Direction, pool *AnimationPool, background *Grid) (changed bool, score int) {
	switch dir {
	case DirLeft:
		return shiftLeft(g, pool, background)

	case DirRight:
		g.reverseRows()
		changed, score = shiftLeft(g, pool, background)
		pool.remap(func(row, col int) (int, int) {
			return row, GridSize - col - 1
		})
		background.reverseRows()
		g.reverseRows()
		return changed, score

	case DirDown:
		g.rotRight()
		changed, score = shiftLeft(g, pool, background)
		pool.remap(func(row, col int) (int, int) {
			return GridSize - col - 1, row
		})
		background.rotLeft()
		g.rotLeft()
		return changed, score

	case DirUp:
		g.rotLeft()
		changed, score = shiftLeft(g, pool, background)
		pool.remap(func(row, col int) (int, int) {
			return col, GridSize - row - 1
		})
		background.rotRight()
		g.rotRight()
		return changed, score
	}

	return false, 0
}

// AddRandomTile writes a 2 or a 4 into a uniformly-chosen empty cell.
// fourProb is the chance of a 4. No-op when the grid is full.
func AddRandomTile(g *Grid, rng *rand.Rand, fourProb float64) {
	type coord struct{ row, col int }
	var empty []coord
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g[row][col] == 0 {
				empty = append(empty, coord{row, col})
			}
		}
	}
	if len(empty) == 0 {
		return
	}

	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}
	cell := empty[rng.Intn(len(empty))]
	g[cell.row][cell.col] = value
}

// EmptyCount returns the number of empty cells.
func EmptyCount(g *Grid) int {
	count := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g[row][col] == 0 {
				count++
			}
		}
	}
	return count
}

// Sum returns the sum of all tile values.
func Sum(g *Grid) int {
	total := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			total += g[row][col]
		}
	}
	return total
}

// MaxTile returns the largest tile value on the board.
func MaxTile(g *Grid) int {
	max := 0
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g[row][col] > max {
				max = g[row][col]
			}
		}
	}
	return max
}

// IsWon reports whether the target tile is on the board.
func IsWon(g *Grid, target int) bool {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g[row][col] == target {
				return true
			}
		}
	}
	return false
}

// canMove reports whether the tile at (row, col) could move or merge:
// some 4-neighbor is empty or holds the same value.
func canMove(g *Grid, row, col int) bool {
	value := g[row][col]
	if value == 0 {
		return false
	}

	neighbors := [4][2]int{{row - 1, col}, {row + 1, col}, {row, col - 1}, {row, col + 1}}
	for _, n := range neighbors {
		r, c := n[0], n[1]
		if r < 0 || r >= GridSize || c < 0 || c >= GridSize {
			continue
		}
		if g[r][c] == 0 || g[r][c] == value {
			return true
		}
	}
	return false
}

// IsLost reports whether no move is possible: every cell is occupied
// and no tile has an empty or equal-valued neighbor.
func IsLost(g *Grid) bool {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g[row][col] == 0 || canMove(g, row, col) {
				return false
			}
		}
	}
	return true
}
