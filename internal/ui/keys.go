package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit         key.Binding
	SwitchView   key.Binding
	Cancel       key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	DividerLeft  key.Binding
	DividerRight key.Binding
	SnapLeft     key.Binding
	SnapRight    key.Binding
	Find         key.Binding
	Submit       key.Binding
	MoveUp       key.Binding
	MoveDown     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		SwitchView:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),
		Home:         key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "top")),
		End:          key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "bottom")),
		DividerLeft:  key.NewBinding(key.WithKeys("<"), key.WithHelp("</>", "move divider")),
		DividerRight: key.NewBinding(key.WithKeys(">")),
		SnapLeft:     key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "move divider a column")),
		SnapRight:    key.NewBinding(key.WithKeys("]")),
		Find:         key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find column")),
		Submit:       key.NewBinding(key.WithKeys("enter")),
		MoveUp:       key.NewBinding(key.WithKeys("alt+up", "K"), key.WithHelp("alt+↑/↓", "reorder")),
		MoveDown:     key.NewBinding(key.WithKeys("alt+down", "J")),
	}
}

func (k keyMap) gridHelp() []key.Binding {
	return []key.Binding{k.DividerLeft, k.SnapLeft, k.Find, k.SwitchView, k.Quit}
}

func (k keyMap) tasksHelp() []key.Binding {
	return []key.Binding{k.MoveUp, k.SwitchView, k.Quit}
}
