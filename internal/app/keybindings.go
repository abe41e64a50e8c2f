package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for droidbrowser.
type KeyMap struct {
	// Navigation
	Back      key.Binding
	Home      key.Binding
	Reload    key.Binding
	Incognito key.Binding
	OpenURL   key.Binding

	// Scrolling
	ScrollDown key.Binding
	ScrollUp   key.Binding

	// Panels
	HistoryToggle key.Binding
	CommandMode   key.Binding
	Help          key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings. Alt+Left is the browser
// back shortcut.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("alt+left", "H"),
			key.WithHelp("Alt+←/H", "go back"),
		),
		Home: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "home"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload page"),
		),
		Incognito: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle incognito"),
		),
		OpenURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "search or type URL"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		HistoryToggle: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("Ctrl+h", "toggle history"),
		),
		CommandMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Bindings lists the bindings in help order.
func (k KeyMap) Bindings() []key.Binding {
	return []key.Binding{
		k.OpenURL, k.Back, k.Home, k.Reload, k.Incognito,
		k.ScrollDown, k.ScrollUp, k.HistoryToggle, k.CommandMode, k.Help, k.Quit,
	}
}
