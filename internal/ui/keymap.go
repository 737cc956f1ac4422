package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	HalfUp      key.Binding
	HalfDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Select      key.Binding
	Toggle      key.Binding
	Expand      key.Binding
	Collapse    key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	Reset       key.Binding
	Quit        key.Binding
}

func newKeyMap(vim, tree, keyboard bool) keyMap {
	km := keyMap{
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		HalfUp:      key.NewBinding(key.WithKeys(), key.WithDisabled()),
		HalfDown:    key.NewBinding(key.WithKeys(), key.WithDisabled()),
		Home:        key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:         key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Toggle:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Expand:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "expand")),
		Collapse:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "collapse")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Reset:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
	if vim {
		km.Up.SetKeys("up", "k")
		km.Down.SetKeys("down", "j")
		km.Home.SetKeys("home", "g")
		km.End.SetKeys("end", "G")
		km.HalfUp = key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up"))
		km.HalfDown = key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down"))
	}
	if tree {
		km.Select.SetEnabled(false)
	} else {
		km.Toggle.SetEnabled(false)
		km.Expand.SetEnabled(false)
		km.Collapse.SetEnabled(false)
		km.Search.SetEnabled(false)
		km.ClearSearch.SetEnabled(false)
	}
	if !keyboard {
		for _, b := range []*key.Binding{
			&km.Up, &km.Down, &km.PageUp, &km.PageDown, &km.HalfUp, &km.HalfDown,
			&km.Home, &km.End, &km.Select, &km.Toggle, &km.Expand, &km.Collapse,
		} {
			b.SetEnabled(false)
		}
	}
	return km
}

// help returns the footer hint for the enabled bindings.
func (k keyMap) help() []key.Binding {
	all := []key.Binding{k.Up, k.Down, k.Select, k.Toggle, k.Collapse, k.Search, k.ClearSearch, k.Reset, k.Quit}
	out := make([]key.Binding, 0, len(all))
	for _, b := range all {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}
