package ui

import (
	"strconv"
	"strings"

	"github.com/atomicstack/panesync/internal/grid"
	"github.com/atomicstack/panesync/internal/layout"
	"github.com/atomicstack/panesync/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev := msg.(tea.MouseMsg)
	if ev.Y < contentTop {
		if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft {
			m.clickTab(ev.X)
		}
		return nil
	}
	x, y := ev.X, ev.Y-contentTop
	if m.view == ViewTasks {
		m.handleTasksMouse(ev, x, y)
	} else {
		m.handleGridMouse(ev, x, y)
	}
	return nil
}

// wheelDelta converts a wheel button into an axis and a signed step.
func wheelDelta(ev tea.MouseMsg) (layout.Axis, int, bool) {
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		if ev.Shift {
			return layout.Horizontal, -1, true
		}
		return layout.Vertical, -1, true
	case tea.MouseButtonWheelDown:
		if ev.Shift {
			return layout.Horizontal, 1, true
		}
		return layout.Vertical, 1, true
	case tea.MouseButtonWheelLeft:
		return layout.Horizontal, -1, true
	case tea.MouseButtonWheelRight:
		return layout.Horizontal, 1, true
	}
	return 0, 0, false
}

func (m *Model) handleGridMouse(ev tea.MouseMsg, x, y int) {
	g := m.grid
	if axis, dir, ok := wheelDelta(ev); ok {
		pane := g.PaneAt(x, y)
		switch pane {
		case grid.PaneNone, grid.PaneDivider, grid.PaneRule:
			pane = grid.PaneBody
		}
		step := wheelStep
		if axis == layout.Horizontal {
			step = g.ColumnWidth()
		}
		g.Scroll(pane, axis, dir*step)
		return
	}
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button == tea.MouseButtonLeft {
			g.BeginDrag(x, y)
		}
	case tea.MouseActionMotion:
		if g.Dragging() {
			g.DragTo(x, y)
		}
	case tea.MouseActionRelease:
		if !g.Dragging() {
			return
		}
		divider := g.DraggingDivider()
		g.EndDrag()
		if divider {
			m.infoMsg = "divider at " + strconv.Itoa(g.HeaderSplit().Position())
		} else {
			m.infoMsg = "columns: " + strings.Join(g.ColumnOrder(), ", ")
		}
	}
}

func (m *Model) handleTasksMouse(ev tea.MouseMsg, x, y int) {
	l := m.tasks
	if axis, dir, ok := wheelDelta(ev); ok {
		if axis == layout.Vertical {
			l.Region().ScrollBy(layout.Vertical, dir*wheelStep)
		}
		return
	}
	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft {
			return
		}
		idx, ok := l.RowAt(y)
		if !ok {
			return
		}
		l.Cursor = idx
		if m.taskOrder.PointerDown(l.Offset() + y) {
			m.taskDrag = true
			events.Drag.Start("tasks", idx)
		}
	case tea.MouseActionMotion:
		if !m.taskDrag {
			return
		}
		if m.taskOrder.PointerMove(l.Offset() + y) {
			if current, _, ok := m.taskOrder.Dragging(); ok {
				l.MoveCursorTo(current)
			}
		}
	case tea.MouseActionRelease:
		if !m.taskDrag {
			return
		}
		m.taskDrag = false
		m.taskOrder.PointerUp()
	}
}

func (m *Model) clickTab(x int) {
	first := lipgloss.Width(m.renderTab(ViewGrid))
	if x < first {
		m.setView(ViewGrid)
		return
	}
	m.setView(ViewTasks)
}
