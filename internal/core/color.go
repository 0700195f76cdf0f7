package core

// Color is a palette index attached to a console cell. Index 0 means
// "no special attribute"; the compositor maps the rest onto terminal
// color pairs.
type Color uint8

// Palette entries used by the game. Block colors are keyed by tile
// value when a block is drawn.
const (
	ColorDefault Color = iota
	ColorBlock2
	ColorBlock4
	ColorBlock8
	ColorBlock16
	ColorBlock32
	ColorBlock64
)
