package core

import "fmt"

// Default console dimensions, matching a classic text-mode display.
const (
	ConsoleWidth  = 80
	ConsoleHeight = 25
)

// Cell is a single console position: one byte of character data plus a
// palette color index.
type Cell struct {
	Ch    byte
	Color Color
}

// Cursor tracks where the next byte written through the console's
// stream interface will land.
type Cursor struct {
	Row     int
	Col     int
	Visible bool
}

// Console is a 2D character+color buffer with a cursor and
// scroll-on-overflow semantics. Games paint into a Console and the
// platform composites it to the real terminal, so drawing never
// flickers and never touches the display directly.
//
// Every public entry point range-checks its inputs before touching the
// cell grid. Invalid input is a silent no-op; the console is a
// rendering primitive, not a validating API. SetCursor is the one
// exception and reports failure to the caller.
type Console struct {
	width      int
	height     int
	cells      [][]Cell
	cursor     Cursor
	clearColor Color
	writeColor Color
}

// NewConsole creates a console buffer with the given dimensions,
// cleared and with the cursor at the origin.
func NewConsole(width, height int) *Console {
	c := &Console{
		width:  width,
		height: height,
	}
	c.cells = make([][]Cell, height)
	for row := range c.cells {
		c.cells[row] = make([]Cell, width)
	}
	c.Clear()
	return c
}

// Width returns the console width in cells.
func (c *Console) Width() int {
	return c.width
}

// Height returns the console height in cells.
func (c *Console) Height() int {
	return c.height
}

// SetWriteColor changes the color applied to bytes written through the
// cursor (PutByte and friends).
func (c *Console) SetWriteColor(color Color) {
	c.writeColor = color
}

// WriteColor returns the current stream write color.
func (c *Console) WriteColor() Color {
	return c.writeColor
}

// SetClearColor changes the color used by Clear and by rows exposed
// when the console scrolls.
func (c *Console) SetClearColor(color Color) {
	c.clearColor = color
}

// Cursor returns the current cursor state.
func (c *Console) Cursor() Cursor {
	return c.cursor
}

// SetCursorVisible toggles cursor visibility. The console itself never
// draws the cursor; the flag is advice for the compositor.
func (c *Console) SetCursorVisible(visible bool) {
	c.cursor.Visible = visible
}

func (c *Console) inBounds(row, col int) bool {
	return row >= 0 && row < c.height && col >= 0 && col < c.width
}

// PutByte writes one byte at the cursor, interpreting control bytes:
//
//	\b  retreat one column (clamped at column 0), blank that cell
//	\n  move to column 0 of the next row, scrolling on the last row
//	\r  move to column 0 of the current row
//
// Any other byte is stored at the cursor with the write color and the
// cursor advances one column, wrapping to the next row; wrapping past
// the last row scrolls the console.
func (c *Console) PutByte(b byte) {
	switch b {
	case '\b':
		if c.cursor.Col > 0 {
			c.cursor.Col--
		}
		c.cells[c.cursor.Row][c.cursor.Col] = Cell{Ch: ' ', Color: c.writeColor}
	case '\n':
		if c.newline() {
			c.scrollByOne()
		}
	case '\r':
		c.cursor.Col = 0
	default:
		c.cells[c.cursor.Row][c.cursor.Col] = Cell{Ch: b, Color: c.writeColor}
		if c.advanceCursor() {
			c.scrollByOne()
		}
	}
}

// PutString writes every byte of s through PutByte.
func (c *Console) PutString(s string) {
	for i := 0; i < len(s); i++ {
		c.PutByte(s[i])
	}
}

// PutBytes writes the first n bytes of b through PutByte. Nil input or
// a negative count is a no-op.
func (c *Console) PutBytes(b []byte, n int) {
	if b == nil || n < 0 {
		return
	}
	if n > len(b) {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		c.PutByte(b[i])
	}
}

// Clear fills every cell with a blank in the clear color and homes the
// cursor.
func (c *Console) Clear() {
	for row := range c.cells {
		for col := range c.cells[row] {
			c.cells[row][col] = Cell{Ch: ' ', Color: c.clearColor}
		}
	}
	c.cursor.Row = 0
	c.cursor.Col = 0
}

// DrawChar stores a character directly, bypassing the cursor.
// Out-of-bounds coordinates or character/color values outside 0-255
// are silently ignored.
func (c *Console) DrawChar(row, col, ch int, color int) {
	if !c.inBounds(row, col) {
		return
	}
	if ch < 0 || ch > 0xFF {
		return
	}
	if color < 0 || color > 0xFF {
		return
	}
	c.cells[row][col] = Cell{Ch: byte(ch), Color: Color(color)}
}

// Get reads the cell at (row, col). Out-of-bounds reads return a zero
// cell.
func (c *Console) Get(row, col int) (byte, Color) {
	if !c.inBounds(row, col) {
		return 0, 0
	}
	cell := c.cells[row][col]
	return cell.Ch, cell.Color
}

// SetCursor moves the cursor. It fails, without mutating anything, if
// the target is outside the console.
func (c *Console) SetCursor(row, col int) error {
	if !c.inBounds(row, col) {
		return fmt.Errorf("console: cursor (%d, %d) out of %dx%d bounds", row, col, c.height, c.width)
	}
	c.cursor.Row = row
	c.cursor.Col = col
	return nil
}

// advanceCursor moves the cursor one column forward, wrapping at the
// row edge. Returns true when the wrap falls off the last row and a
// scroll is needed.
func (c *Console) advanceCursor() bool {
	if c.cursor.Col == c.width-1 {
		c.cursor.Col = 0
		if c.cursor.Row == c.height-1 {
			return true
		}
		c.cursor.Row++
		return false
	}
	c.cursor.Col++
	return false
}

// newline moves the cursor to column 0 of the next row. Returns true
// when the cursor was already on the last row and a scroll is needed.
func (c *Console) newline() bool {
	c.cursor.Col = 0
	if c.cursor.Row == c.height-1 {
		return true
	}
	c.cursor.Row++
	return false
}

// scrollByOne shifts rows 1..height-1 up by one. Row 0 is discarded
// and the freed last row is cleared.
func (c *Console) scrollByOne() {
	for row := 1; row < c.height; row++ {
		copy(c.cells[row-1], c.cells[row])
	}
	last := c.cells[c.height-1]
	for col := range last {
		last[col] = Cell{Ch: ' ', Color: c.clearColor}
	}
}

// Row returns a copy of row y's characters as a string, primarily for
// tests and screenshots.
func (c *Console) Row(row int) string {
	if row < 0 || row >= c.height {
		return ""
	}
	buf := make([]byte, c.width)
	for col, cell := range c.cells[row] {
		buf[col] = cell.Ch
	}
	return string(buf)
}
