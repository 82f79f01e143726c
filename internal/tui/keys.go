package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Enter    key.Binding
	Back     key.Binding

	// Screens
	Home      key.Binding
	Movies    key.Binding
	TVShows   key.Binding
	Search    key.Binding
	Favorites key.Binding
	Saved     key.Binding

	// Actions
	Quit           key.Binding
	Filter         key.Binding
	NextList       key.Binding
	LoadMore       key.Binding
	ToggleFavorite key.Binding
	ToggleSaved    key.Binding
	Share          key.Binding
	Open           key.Binding
	Refresh        key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("C-u", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("C-d", "page down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),

		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Movies: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "movies"),
		),
		TVShows: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "tv"),
		),
		Search: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "search"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "favorites"),
		),
		Saved: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "saved"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		NextList: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next list"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		ToggleFavorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		ToggleSaved: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Share: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "share"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Enter, k.Back, k.ToggleFavorite, k.ToggleSaved, k.Share,
		k.LoadMore, k.Filter, k.NextList, k.Quit,
	}
}
