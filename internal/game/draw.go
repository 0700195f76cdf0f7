package game

import (
	"fmt"
	"strconv"

	"github.com/horsecatdog/gazool/internal/core"
)

// Block cell geometry on the console: each grid cell owns a 6-row by
// 12-column region; the drawable patch inside the borders is 5x11.
const (
	cellRows    = 6
	cellCols    = 12
	patchHeight = 5
	patchWidth  = 11
)

// consoleRow maps a grid row to the console row of a block patch.
func consoleRow(row int) int {
	return row*cellRows + 1
}

// consoleCol maps a grid column to the console column of a block patch.
func consoleCol(col int) int {
	return col*cellCols + 1
}

// blockColor picks the palette entry for a tile value.
func blockColor(value int) core.Color {
	switch value {
	case 2:
		return core.ColorBlock2
	case 4:
		return core.ColorBlock4
	case 8:
		return core.ColorBlock8
	case 16:
		return core.ColorBlock16
	case 32:
		return core.ColorBlock32
	default:
		return core.ColorBlock64
	}
}

// drawBackground clears the console and paints a full-screen asset.
func drawBackground(console *core.Console, screen string) {
	console.Clear()
	console.SetCursor(0, 0)
	console.PutString(screen)
}

// drawScore prints a score value starting at (row, col).
func drawScore(console *core.Console, row, col int, score int) {
	if err := console.SetCursor(row, col); err != nil {
		return
	}
	console.PutString(strconv.Itoa(score))
}

// drawBlock paints one tile patch with its value centered, colored by
// value. row and col are console coordinates of the patch corner.
func drawBlock(console *core.Console, row, col, value int) {
	old := console.WriteColor()
	console.SetWriteColor(blockColor(value))

	blank := "           "
	for line := 0; line < patchHeight; line++ {
		if err := console.SetCursor(row+line, col); err != nil {
			continue
		}
		if line == patchHeight/2 {
			console.PutString(fmt.Sprintf("  %4d     ", value))
		} else {
			console.PutString(blank)
		}
	}

	console.SetWriteColor(old)
}

// drawBlocks paints every non-empty tile of a grid at its board
// position.
func drawBlocks(console *core.Console, g *Grid) {
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			if g[row][col] > 0 {
				drawBlock(console, consoleRow(row), consoleCol(col), g[row][col])
			}
		}
	}
}

// drawBoard paints the static game view: chrome, scores, and the
// settled grid.
func (s *Session) drawBoard() {
	drawBackground(s.console, gameBackground)
	drawScore(s.console, scoreRow, scoreCol, s.score)
	drawScore(s.console, scoreRow, highScoreCol, s.highScore)
	drawBlocks(s.console, &s.grid)
}

// drawAnimationFrame paints one frame of an in-flight shift: the board
// chrome and the background snapshot first, then every live animated
// block on top at its current console position.
func (s *Session) drawAnimationFrame() {
	drawBackground(s.console, gameBackground)
	drawScore(s.console, scoreRow, scoreCol, s.score)
	drawScore(s.console, scoreRow, highScoreCol, s.highScore)
	drawBlocks(s.console, &s.background)

	for _, b := range s.pool.Blocks() {
		switch b.State {
		case BlockMoving:
			drawBlock(s.console, b.CurRow, b.CurCol, b.MovingValue)
		case BlockIdle:
			drawBlock(s.console, b.CurRow, b.CurCol, b.IdleValue)
		}
	}
}

// drawTitle paints the title screen with the session high score.
func (s *Session) drawTitle() {
	drawBackground(s.console, titleScreen)
	drawScore(s.console, titleHighScoreRow, titleHighScoreCol, s.highScore)
}

// drawBanner paints a game-over banner over the current board.
func (s *Session) drawBanner(banner string) {
	s.drawBoard()
	s.console.SetCursor(bannerRow, 0)
	s.console.PutString(banner)
}
