package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/panesync/internal/format/table"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var views = []View{ViewGrid, ViewTasks}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]string, 0, m.contentHeight()+tabsHeight+footerHeight)
	lines = append(lines, m.tabsLine())
	if m.view == ViewTasks {
		lines = append(lines, m.taskLines()...)
	} else {
		lines = append(lines, m.grid.View())
	}
	lines = append(lines, m.footerLine())
	return strings.Join(lines, "\n")
}

func (m *Model) renderTab(v View) string {
	label := fmt.Sprintf(" %s ", v)
	if v == m.view {
		return m.styles.ActiveTab.Render(label)
	}
	return m.styles.Tab.Render(label)
}

func (m *Model) tabsLine() string {
	parts := make([]string, len(views))
	for i, v := range views {
		parts[i] = m.renderTab(v)
	}
	return fitWidth(strings.Join(parts, ""), m.width)
}

// taskLines renders the visible slice of the task list, padded to the
// content height.
func (m *Model) taskLines() []string {
	l := m.tasks
	items := m.taskOrder.Items()
	dragged := -1
	if current, _, ok := m.taskOrder.Dragging(); ok {
		dragged = current
	}
	start := l.Offset()
	end := min(start+l.Visible(), len(items))
	rows := make([][]string, 0, max(end-start, 0))
	for i := start; i < end; i++ {
		rows = append(rows, []string{fmt.Sprintf("%d.", i+1), items[i]})
	}
	formatted := table.Format(rows, []table.Alignment{table.AlignRight, table.AlignLeft})

	height := m.contentHeight()
	if height <= 0 {
		height = len(formatted)
	}
	lines := make([]string, 0, height)
	for i, text := range formatted {
		idx := start + i
		style := m.styles.Item
		switch idx {
		case dragged:
			style = m.styles.DraggedItem
		case l.Cursor:
			style = m.styles.SelectedItem
		}
		text = " " + text
		if pad := m.width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		lines = append(lines, style.Render(fitWidth(text, m.width)))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines[:height]
}

func (m *Model) footerLine() string {
	switch {
	case m.finding:
		return fitWidth(m.finder.View(), m.width)
	case m.errMsg != "":
		return m.styles.Error.Render(fitWidth("Error: "+m.errMsg, m.width))
	case m.infoMsg != "":
		return m.styles.Info.Render(fitWidth(m.infoMsg, m.width))
	}
	bindings := m.keys.gridHelp()
	if m.view == ViewTasks {
		bindings = m.keys.tasksHelp()
	}
	return m.styles.Footer.Render(fitWidth(helpText(bindings), m.width))
}

func helpText(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// fitWidth truncates an ANSI-styled line to width columns.
func fitWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
