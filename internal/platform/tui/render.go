package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/horsecatdog/gazool/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Tiles are drawn as
// black text on a colored background, one background per value tier.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBlock2:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("3")),
	core.ColorBlock4:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")),
	core.ColorBlock8:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("4")),
	core.ColorBlock16: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")),
	core.ColorBlock32: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("1")),
	core.ColorBlock64: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5")),
}

// RenderConsole converts a console buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderConsole(c *core.Console) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for row := 0; row < c.Height(); row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}

		// Group consecutive cells with the same color for efficiency
		col := 0
		for col < c.Width() {
			_, startColor := c.Get(row, col)

			var run strings.Builder
			for col < c.Width() {
				ch, color := c.Get(row, col)
				if color != startColor {
					break
				}
				run.WriteByte(ch)
				col++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
