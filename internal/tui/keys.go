package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevPage   key.Binding
	NextPage   key.Binding
	ToggleRow  key.Binding
	TogglePage key.Binding
	PageSize   key.Binding
	SelectN    key.Binding
	Reload     key.Binding
	Submit     key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next page"),
		),
		ToggleRow: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle row"),
		),
		TogglePage: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle page"),
		),
		PageSize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "page size"),
		),
		SelectN: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "select first N"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the table view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.ToggleRow, k.TogglePage, k.SelectN, k.PageSize, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevPage, k.NextPage, k.PageSize, k.Reload},
		{k.ToggleRow, k.TogglePage, k.SelectN},
		{k.Quit},
	}
}

// overlayKeys is the help shown while the bulk selection input is open.
type overlayKeys struct {
	keyMap
}

func (k overlayKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Close}
}

func (k overlayKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Submit, k.Close}}
}
