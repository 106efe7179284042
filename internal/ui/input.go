package ui

import (
	"fmt"

	"github.com/atomicstack/panesync/internal/grid"
	"github.com/atomicstack/panesync/internal/layout"
	"github.com/atomicstack/panesync/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// far is an offset past any content; regions clamp it to their maximum.
const far = 1 << 30

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	k := msg.(tea.KeyMsg)
	if m.finding {
		return m.handleFinderKey(k)
	}
	switch {
	case key.Matches(k, m.keys.Quit):
		events.App.Exit("quit key")
		return tea.Quit
	case key.Matches(k, m.keys.Cancel):
		if m.cancelDrags("escape") {
			m.infoMsg = "drag cancelled"
		}
		return nil
	case key.Matches(k, m.keys.SwitchView):
		if m.view == ViewGrid {
			m.setView(ViewTasks)
		} else {
			m.setView(ViewGrid)
		}
		return nil
	}
	if m.view == ViewTasks {
		return m.handleTasksKey(k)
	}
	return m.handleGridKey(k)
}

func (m *Model) handleGridKey(k tea.KeyMsg) tea.Cmd {
	g := m.grid
	cw := g.ColumnWidth()
	switch {
	case key.Matches(k, m.keys.Up):
		g.Scroll(grid.PaneBody, layout.Vertical, -1)
	case key.Matches(k, m.keys.Down):
		g.Scroll(grid.PaneBody, layout.Vertical, 1)
	case key.Matches(k, m.keys.Left):
		g.Scroll(grid.PaneBody, layout.Horizontal, -cw)
	case key.Matches(k, m.keys.Right):
		g.Scroll(grid.PaneBody, layout.Horizontal, cw)
	case key.Matches(k, m.keys.PageUp):
		g.Scroll(grid.PaneBody, layout.Vertical, -g.PageSize(layout.Vertical))
	case key.Matches(k, m.keys.PageDown):
		g.Scroll(grid.PaneBody, layout.Vertical, g.PageSize(layout.Vertical))
	case key.Matches(k, m.keys.Home):
		g.ScrollTo(grid.PaneBody, layout.Horizontal, 0)
		g.ScrollTo(grid.PaneBody, layout.Vertical, 0)
	case key.Matches(k, m.keys.End):
		g.ScrollTo(grid.PaneBody, layout.Vertical, far)
	case key.Matches(k, m.keys.DividerLeft):
		g.MoveDivider(g.HeaderSplit().Position() - 1)
	case key.Matches(k, m.keys.DividerRight):
		g.MoveDivider(g.HeaderSplit().Position() + 1)
	case key.Matches(k, m.keys.SnapLeft):
		g.MoveDivider(snap(g.HeaderSplit().Position()-1, cw))
	case key.Matches(k, m.keys.SnapRight):
		g.MoveDivider(snap(g.HeaderSplit().Position(), cw) + cw)
	case key.Matches(k, m.keys.Find):
		return m.openFinder()
	}
	return nil
}

// snap rounds pos down to a column boundary.
func snap(pos, cw int) int {
	if pos <= 0 || cw <= 0 {
		return 0
	}
	return pos - pos%cw
}

func (m *Model) handleTasksKey(k tea.KeyMsg) tea.Cmd {
	l := m.tasks
	moved := false
	switch {
	case key.Matches(k, m.keys.Up):
		moved = l.MoveCursorBy(-1)
	case key.Matches(k, m.keys.Down):
		moved = l.MoveCursorBy(1)
	case key.Matches(k, m.keys.PageUp):
		moved = l.MoveCursorPageUp()
	case key.Matches(k, m.keys.PageDown):
		moved = l.MoveCursorPageDown()
	case key.Matches(k, m.keys.Home):
		moved = l.MoveCursorHome()
	case key.Matches(k, m.keys.End):
		moved = l.MoveCursorEnd()
	case key.Matches(k, m.keys.MoveUp):
		m.moveTask(-1)
	case key.Matches(k, m.keys.MoveDown):
		m.moveTask(1)
	}
	if moved {
		events.UI.Cursor("tasks", l.Cursor)
	}
	return nil
}

func (m *Model) moveTask(delta int) {
	from := m.tasks.Cursor
	if m.taskOrder.MoveItem(from, from+delta) {
		m.tasks.MoveCursorTo(from + delta)
	}
}

func (m *Model) openFinder() tea.Cmd {
	m.finding = true
	m.errMsg = ""
	m.infoMsg = ""
	m.finder.Reset()
	events.Finder.Open()
	return m.finder.Focus()
}

func (m *Model) closeFinder() {
	m.finding = false
	m.finder.Blur()
	m.finder.Reset()
}

func (m *Model) handleFinderKey(k tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(k, m.keys.Cancel):
		m.closeFinder()
		return nil
	case key.Matches(k, m.keys.Submit):
		query := m.finder.Value()
		m.closeFinder()
		if title, ok := m.grid.FindColumn(query); ok {
			m.infoMsg = fmt.Sprintf("column %s", title)
		} else {
			m.errMsg = fmt.Sprintf("no column matches %q", query)
		}
		return nil
	}
	var cmd tea.Cmd
	m.finder, cmd = m.finder.Update(k)
	return cmd
}
