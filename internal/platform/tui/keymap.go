package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/horsecatdog/gazool/internal/core"
)

// KeyMapper translates Bubble Tea key messages to console keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a console key. Arrow keys map to
// the dedicated key constants; single printable runes pass through as
// themselves. Everything else maps to KeyNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Key {
	switch msg.Type {
	case tea.KeyUp:
		return core.KeyUp
	case tea.KeyDown:
		return core.KeyDown
	case tea.KeyLeft:
		return core.KeyLeft
	case tea.KeyRight:
		return core.KeyRight
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && msg.Runes[0] < 128 {
			return core.Key(msg.Runes[0])
		}
	}
	return core.KeyNone
}
