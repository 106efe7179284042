package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	ColumnHeader      *lipgloss.Style
	FrozenHeader      *lipgloss.Style
	FrozenCell        *lipgloss.Style
	Cell              *lipgloss.Style
	DraggedColumn     *lipgloss.Style
	Divider           *lipgloss.Style
	DividerActive     *lipgloss.Style
	Rule              *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
	DraggedItem       *lipgloss.Style
	Rank              *lipgloss.Style
	Title             *lipgloss.Style
	Tab               *lipgloss.Style
	ActiveTab         *lipgloss.Style
	Info              *lipgloss.Style
	Error             *lipgloss.Style
	Footer            *lipgloss.Style
	FinderPrompt      *lipgloss.Style
	FinderText        *lipgloss.Style
	FinderPlaceholder *lipgloss.Style
}

var defaultStyles = Styles{
	ColumnHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("236")).Bold(true),
	),
	FrozenHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("236")).Bold(true),
	),
	FrozenCell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Cell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	DraggedColumn: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Divider: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	DividerActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Rule: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DraggedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Rank: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Padding(0, 1),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FinderPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FinderText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FinderPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set with no colours, used by tests that compare
// rendered text.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	s := Styles{}
	for _, field := range []**lipgloss.Style{
		&s.ColumnHeader, &s.FrozenHeader, &s.FrozenCell, &s.Cell, &s.DraggedColumn,
		&s.Divider, &s.DividerActive, &s.Rule, &s.Item, &s.SelectedItem,
		&s.DraggedItem, &s.Rank, &s.Title, &s.Tab, &s.ActiveTab, &s.Info,
		&s.Error, &s.Footer, &s.FinderPrompt, &s.FinderText, &s.FinderPlaceholder,
	} {
		*field = ptr(plain)
	}
	return &s
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
