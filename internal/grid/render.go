package grid

import (
	"strings"

	"github.com/atomicstack/panesync/internal/format/table"
	"github.com/atomicstack/panesync/internal/layout"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	dividerGlyph = "│"
	ruleGlyph    = "─"
	jointGlyph   = "┼"
)

// View renders the grid, one line per terminal row.
func (g *Grid) View() string {
	bodyH := g.bodyHeight()
	lines := make([]string, 0, headerHeight+ruleHeight+bodyH)
	lines = append(lines, g.headerLine(), g.ruleLine())
	rowTop := g.rows.Offset(layout.Vertical)
	bodyTop := g.cells.Offset(layout.Vertical)
	for i := 0; i < bodyH; i++ {
		lines = append(lines, g.bodyLine(rowTop+i, bodyTop+i))
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) headerLine() string {
	left, right := g.header.Segments()
	frozen := g.sheet.Columns[:g.frozen]
	order := g.order.Items()
	titles := make([]string, len(order))
	for i, idx := range order {
		titles[i] = g.sheet.Columns[idx]
	}
	dragged := -1
	if current, _, ok := g.order.Dragging(); ok {
		dragged = current
	}
	return strip(frozen, g.cw, g.corner.Offset(layout.Horizontal), left, func(int) *lipgloss.Style {
		return g.styles.FrozenHeader
	}) + g.divider() + strip(titles, g.cw, g.columns.Offset(layout.Horizontal), right, func(i int) *lipgloss.Style {
		if i == dragged {
			return g.styles.DraggedColumn
		}
		return g.styles.ColumnHeader
	})
}

func (g *Grid) ruleLine() string {
	left, right := g.body.Segments()
	line := strings.Repeat(ruleGlyph, left) + jointGlyph + strings.Repeat(ruleGlyph, max(right, 0))
	return g.styles.Rule.Render(line)
}

func (g *Grid) bodyLine(leftRow, rightRow int) string {
	left, right := g.body.Segments()
	var frozen, scrolling []string
	if leftRow < len(g.sheet.Rows) {
		frozen = g.sheet.Rows[leftRow][:g.frozen]
	}
	if rightRow < len(g.sheet.Rows) {
		row := g.sheet.Rows[rightRow]
		order := g.order.Items()
		scrolling = make([]string, len(order))
		for i, idx := range order {
			scrolling[i] = row[idx]
		}
	}
	return strip(frozen, g.cw, g.rows.Offset(layout.Horizontal), left, func(int) *lipgloss.Style {
		return g.styles.FrozenCell
	}) + g.divider() + strip(scrolling, g.cw, g.cells.Offset(layout.Horizontal), right, func(int) *lipgloss.Style {
		return g.styles.Cell
	})
}

func (g *Grid) divider() string {
	if g.drag == dragDivider {
		return g.styles.DividerActive.Render(dividerGlyph)
	}
	return g.styles.Divider.Render(dividerGlyph)
}

// strip renders the part of a row of fixed-width cells that is visible
// through a window of width cells starting at offset, padded to width.
func strip(cells []string, cw, offset, width int, style func(i int) *lipgloss.Style) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	end := offset + width
	for i, text := range cells {
		cx := i * cw
		if cx+cw <= offset {
			continue
		}
		if cx >= end {
			break
		}
		cell := table.Cell(text, cw, table.AlignLeft)
		piece := ansi.Cut(cell, max(offset, cx)-cx, min(end, cx+cw)-cx)
		used += ansi.StringWidth(piece)
		b.WriteString(style(i).Render(piece))
	}
	if used < width {
		b.WriteString(strings.Repeat(" ", width-used))
	}
	return b.String()
}
