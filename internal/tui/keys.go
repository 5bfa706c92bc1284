package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typespeed/internal/model"
	"github.com/verte-zerg/typespeed/internal/typing"
)

type keyMap struct {
	Backspace key.Binding
	Restart   key.Binding
	Quit      key.Binding
	Kill      key.Binding
}

var keys = keyMap{
	Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete")),
	Restart:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new round")),
	Quit:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	Kill:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "force quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Backspace, k.Restart, k.Quit, k.Kill}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// forState hides bindings that do nothing in s.
func (k keyMap) forState(s typing.State) keyMap {
	k.Backspace.SetEnabled(s == typing.StateActive)
	k.Restart.SetEnabled(s == typing.StateCompleted)
	return k
}

// translate maps a Bubble Tea key message to core key events. Pasted or
// batched runes become one event each.
func translate(msg tea.KeyMsg) []model.Key {
	switch {
	case key.Matches(msg, keys.Kill):
		return []model.Key{{Code: model.KeyRune, Rune: 'c', Mods: model.ModCtrl}}
	case key.Matches(msg, keys.Quit):
		return []model.Key{{Code: model.KeyEsc}}
	case key.Matches(msg, keys.Restart):
		return []model.Key{{Code: model.KeyEnter}}
	case key.Matches(msg, keys.Backspace):
		return []model.Key{{Code: model.KeyBackspace}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []model.Key{{Code: model.KeyRune, Rune: typing.Delimiter}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]model.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			k := model.Key{Code: model.KeyRune, Rune: r}
			// The terminal already applied shift; keep the flag for the core.
			if unicode.IsUpper(r) {
				k.Mods |= model.ModShift
			}
			out = append(out, k)
		}
		return out
	default:
		return nil
	}
}
