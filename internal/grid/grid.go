// Package grid assembles the layout primitives into a spreadsheet view with
// a frozen header row and frozen leading columns.
//
// The view is two rows of panes, each split by its own divider:
//
//	corner   │ columns
//	─────────┼────────
//	rows     │ body
//
// The header and body splits are kept at the same position by a SplitPair.
// Horizontal scrolling of the body is mirrored onto the column headers,
// vertical scrolling onto the frozen rows, and the two frozen panes share
// their own horizontal offset.
package grid

import (
	"fmt"

	"github.com/atomicstack/panesync/internal/layout"
	"github.com/atomicstack/panesync/internal/logging/events"
	"github.com/atomicstack/panesync/internal/reorder"
	"github.com/atomicstack/panesync/internal/theme"
)

// Pane identifies a hit-test area of the grid.
type Pane int

const (
	PaneNone Pane = iota
	PaneCorner
	PaneColumns
	PaneRows
	PaneBody
	PaneDivider
	PaneRule
)

func (p Pane) String() string {
	switch p {
	case PaneCorner:
		return "corner"
	case PaneColumns:
		return "columns"
	case PaneRows:
		return "rows"
	case PaneBody:
		return "body"
	case PaneDivider:
		return "divider"
	case PaneRule:
		return "rule"
	}
	return "none"
}

const (
	headerHeight = 1
	ruleHeight   = 1
	dividerWidth = 1

	defaultWidth       = 80
	defaultHeight      = 24
	defaultColumnWidth = 10
)

// Config controls the construction of a Grid.
type Config struct {
	Width  int
	Height int

	FrozenColumns int
	ColumnWidth   int

	// DividerPercent wins over DividerPosition when set. With neither set the
	// divider sits just right of the frozen columns.
	DividerPercent  float64
	DividerPosition int
	MinPane         int

	Sync  layout.Axes
	Clamp layout.ClampPolicy

	Styles *theme.Styles
}

type dragKind int

const (
	dragNone dragKind = iota
	dragDivider
	dragColumn
)

// Grid is a frozen-pane spreadsheet view.
type Grid struct {
	sheet  Sheet
	frozen int
	cw     int
	width  int
	height int
	styles *theme.Styles

	header *layout.Split
	body   *layout.Split
	pair   *layout.SplitPair

	corner  *layout.Region
	columns *layout.Region
	rows    *layout.Region
	cells   *layout.Region

	scrollX *layout.SyncGroup
	frozenX *layout.SyncGroup
	scrollY *layout.SyncGroup

	order *reorder.Controller[int]

	drag      dragKind
	dragSplit *layout.Split
}

// New validates cfg against the sheet and wires the panes together.
func New(sheet Sheet, cfg Config) (*Grid, error) {
	if len(sheet.Columns) == 0 {
		return nil, fmt.Errorf("%w: sheet has no columns", layout.ErrInvalidConfiguration)
	}
	for i, row := range sheet.Rows {
		if len(row) != len(sheet.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", layout.ErrInvalidConfiguration, i+1, len(row), len(sheet.Columns))
		}
	}
	if cfg.FrozenColumns < 0 || cfg.FrozenColumns > len(sheet.Columns) {
		return nil, fmt.Errorf("%w: frozen columns %d outside [0,%d]", layout.ErrInvalidConfiguration, cfg.FrozenColumns, len(sheet.Columns))
	}
	if cfg.ColumnWidth == 0 {
		cfg.ColumnWidth = defaultColumnWidth
	}
	if cfg.ColumnWidth < 2 {
		return nil, fmt.Errorf("%w: column width must be at least 2 (got %d)", layout.ErrInvalidConfiguration, cfg.ColumnWidth)
	}
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.Sync&layout.BothAxes == 0 {
		cfg.Sync = layout.BothAxes
	}
	if cfg.Styles == nil {
		cfg.Styles = theme.Default()
	}

	g := &Grid{
		sheet:  sheet,
		frozen: cfg.FrozenColumns,
		cw:     cfg.ColumnWidth,
		width:  cfg.Width,
		height: max(cfg.Height, headerHeight+ruleHeight),
		styles: cfg.Styles,
	}

	splitCfg := layout.SplitConfig{
		Total:      max(g.width-dividerWidth, 0),
		MinSegment: cfg.MinPane,
		Position:   cfg.DividerPosition,
		Percent:    cfg.DividerPercent,
	}
	if splitCfg.Percent == 0 && splitCfg.Position == 0 {
		splitCfg.Position = g.frozenWidth()
	}
	var err error
	if g.header, err = layout.NewSplit(splitCfg); err != nil {
		return nil, fmt.Errorf("header split: %w", err)
	}
	if g.body, err = layout.NewSplit(splitCfg); err != nil {
		return nil, fmt.Errorf("body split: %w", err)
	}
	if g.pair, err = layout.NewSplitPair(g.header, g.body); err != nil {
		return nil, err
	}

	scrollCols := make([]int, 0, len(sheet.Columns)-g.frozen)
	for c := g.frozen; c < len(sheet.Columns); c++ {
		scrollCols = append(scrollCols, c)
	}
	if g.order, err = reorder.New(scrollCols, reorder.Config{ItemExtent: g.cw}); err != nil {
		return nil, err
	}

	g.corner = layout.NewRegion("corner", layout.Size{}, layout.Size{})
	g.columns = layout.NewRegion("columns", layout.Size{}, layout.Size{})
	g.rows = layout.NewRegion("rows", layout.Size{}, layout.Size{})
	g.cells = layout.NewRegion("body", layout.Size{}, layout.Size{})
	g.applyContent()
	g.relayout()

	if g.frozenX, err = layout.NewSyncGroup(layout.AxisX, cfg.Clamp, g.corner, g.rows); err != nil {
		return nil, err
	}
	if cfg.Sync.Has(layout.Horizontal) {
		if g.scrollX, err = layout.NewSyncGroup(layout.AxisX, cfg.Clamp, g.columns, g.cells); err != nil {
			return nil, err
		}
	}
	if cfg.Sync.Has(layout.Vertical) {
		if g.scrollY, err = layout.NewSyncGroup(layout.AxisY, cfg.Clamp, g.rows, g.cells); err != nil {
			return nil, err
		}
	}

	g.observe()
	return g, nil
}

func (g *Grid) observe() {
	for _, r := range []*layout.Region{g.corner, g.columns, g.rows, g.cells} {
		r.OnOffsetChanged(func(ev layout.OffsetEvent) {
			events.Scroll.Offset(ev.Region.ID(), ev.Axis.String(), ev.Offset, ev.Previous)
		})
	}
	g.header.OnDividerMoved(func(ev layout.DividerEvent) {
		events.Split.Divider("header", ev.Position, ev.Previous)
		g.relayout()
	})
	g.body.OnDividerMoved(func(ev layout.DividerEvent) {
		events.Split.Divider("body", ev.Position, ev.Previous)
		g.relayout()
	})
	g.order.OnReorder(func(from, to int) {
		events.Drag.Reorder("columns", from, to)
	})
	g.order.OnComplete(func([]int) {
		events.Drag.Complete("columns", g.ColumnOrder())
	})
}

func (g *Grid) frozenWidth() int { return g.frozen * g.cw }

func (g *Grid) scrollWidth() int { return g.order.Len() * g.cw }

func (g *Grid) bodyHeight() int {
	return max(g.height-headerHeight-ruleHeight, 0)
}

func (g *Grid) applyContent() {
	nRows := len(g.sheet.Rows)
	g.corner.SetContentExtent(layout.Size{Width: g.frozenWidth(), Height: headerHeight})
	g.columns.SetContentExtent(layout.Size{Width: g.scrollWidth(), Height: headerHeight})
	g.rows.SetContentExtent(layout.Size{Width: g.frozenWidth(), Height: nRows})
	g.cells.SetContentExtent(layout.Size{Width: g.scrollWidth(), Height: nRows})
}

// relayout pushes the split positions into the region viewports.
func (g *Grid) relayout() {
	hLeft, hRight := g.header.Segments()
	bLeft, bRight := g.body.Segments()
	bodyH := g.bodyHeight()
	g.corner.SetViewportExtent(layout.Size{Width: hLeft, Height: headerHeight})
	g.columns.SetViewportExtent(layout.Size{Width: hRight, Height: headerHeight})
	g.rows.SetViewportExtent(layout.Size{Width: bLeft, Height: bodyH})
	g.cells.SetViewportExtent(layout.Size{Width: bRight, Height: bodyH})
}

// Resize adapts the grid to a new terminal size. Divider positions keep
// their absolute value unless they no longer fit.
func (g *Grid) Resize(width, height int) {
	g.width = max(width, 1)
	g.height = max(height, headerHeight+ruleHeight)
	total := g.width - dividerWidth
	g.header.Resize(total)
	g.body.Resize(total)
	events.Split.Resize("header", g.header.Total(), g.header.Position())
	events.Split.Resize("body", g.body.Total(), g.body.Position())
	g.relayout()
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

// ColumnWidth returns the width of every column in cells.
func (g *Grid) ColumnWidth() int { return g.cw }

// Sheet returns the displayed data.
func (g *Grid) Sheet() Sheet { return g.sheet }

// Region returns the region behind a pane, or nil for non-scrolling panes.
func (g *Grid) Region(p Pane) *layout.Region {
	switch p {
	case PaneCorner:
		return g.corner
	case PaneColumns:
		return g.columns
	case PaneRows:
		return g.rows
	case PaneBody:
		return g.cells
	}
	return nil
}

// HeaderSplit returns the split of the header row.
func (g *Grid) HeaderSplit() *layout.Split { return g.header }

// BodySplit returns the split of the body row.
func (g *Grid) BodySplit() *layout.Split { return g.body }

// route resolves which region a scroll on pane p drives, and through which
// group. Vertical input over the header row scrolls the sheet.
func (g *Grid) route(p Pane, a layout.Axis) (*layout.Region, *layout.SyncGroup) {
	horizontal := a == layout.Horizontal
	switch p {
	case PaneBody:
		if horizontal {
			return g.cells, g.scrollX
		}
		return g.cells, g.scrollY
	case PaneColumns:
		if horizontal {
			return g.columns, g.scrollX
		}
		return g.cells, g.scrollY
	case PaneRows:
		if horizontal {
			return g.rows, g.frozenX
		}
		return g.rows, g.scrollY
	case PaneCorner:
		if horizontal {
			return g.corner, g.frozenX
		}
		return g.cells, g.scrollY
	}
	return nil, nil
}

// Scroll applies one scroll input on pane p and returns the offset the
// driving region reached.
func (g *Grid) Scroll(p Pane, a layout.Axis, delta int) int {
	region, group := g.route(p, a)
	if region == nil {
		return 0
	}
	var applied int
	if group != nil {
		applied = group.ApplyDelta(region, a, delta)
	} else {
		applied = region.ScrollBy(a, delta)
	}
	events.Scroll.Input(region.ID(), a.String(), delta, applied)
	return applied
}

// ScrollTo jumps pane p to an absolute offset.
func (g *Grid) ScrollTo(p Pane, a layout.Axis, value int) int {
	region, group := g.route(p, a)
	if region == nil {
		return 0
	}
	if group != nil {
		return group.SetOffset(region, a, value)
	}
	return region.SetOffset(a, value)
}

// PageSize is the number of body rows or columns cells visible at once.
func (g *Grid) PageSize(a layout.Axis) int {
	return max(g.cells.Viewport().Along(a), 1)
}

// PaneAt hit-tests a cell position relative to the grid origin.
func (g *Grid) PaneAt(x, y int) Pane {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return PaneNone
	}
	switch {
	case y < headerHeight:
		switch pos := g.header.Position(); {
		case x < pos:
			return PaneCorner
		case x == pos:
			return PaneDivider
		default:
			return PaneColumns
		}
	case y < headerHeight+ruleHeight:
		if x == g.body.Position() {
			return PaneDivider
		}
		return PaneRule
	default:
		switch pos := g.body.Position(); {
		case x < pos:
			return PaneRows
		case x == pos:
			return PaneDivider
		default:
			return PaneBody
		}
	}
}

// BeginDrag starts a divider drag or a column drag depending on what lies
// under the pointer. It reports whether a drag started.
func (g *Grid) BeginDrag(x, y int) bool {
	if g.drag != dragNone {
		return false
	}
	switch g.PaneAt(x, y) {
	case PaneDivider:
		g.dragSplit = g.body
		if y < headerHeight {
			g.dragSplit = g.header
		}
		g.drag = dragDivider
		events.Drag.Start("divider", g.dragSplit.Position())
		return true
	case PaneColumns:
		pos := g.columnContentX(x)
		if !g.order.PointerDown(pos) {
			return false
		}
		g.drag = dragColumn
		current, _, _ := g.order.Dragging()
		events.Drag.Start("columns", current)
		return true
	}
	return false
}

// DragTo follows the pointer during a drag.
func (g *Grid) DragTo(x, y int) bool {
	switch g.drag {
	case dragDivider:
		before := g.dragSplit.Position()
		return g.dragSplit.MoveDivider(x) != before
	case dragColumn:
		return g.order.PointerMove(g.columnContentX(x))
	}
	return false
}

// EndDrag completes the active drag.
func (g *Grid) EndDrag() bool {
	switch g.drag {
	case dragDivider:
		g.drag = dragNone
		g.dragSplit = nil
		return true
	case dragColumn:
		g.drag = dragNone
		return g.order.PointerUp()
	}
	return false
}

// CancelDrag abandons the active drag, keeping whatever already moved.
func (g *Grid) CancelDrag(reason string) bool {
	switch g.drag {
	case dragDivider:
		events.Drag.Cancel("divider", reason)
	case dragColumn:
		g.order.Cancel()
		events.Drag.Cancel("columns", reason)
	default:
		return false
	}
	g.drag = dragNone
	g.dragSplit = nil
	return true
}

// Dragging reports whether a drag is in progress.
func (g *Grid) Dragging() bool { return g.drag != dragNone }

// DraggingDivider reports whether the active drag is a divider drag.
func (g *Grid) DraggingDivider() bool { return g.drag == dragDivider }

// MoveDivider moves the header divider; the pair mirrors it onto the body.
func (g *Grid) MoveDivider(x int) int {
	return g.header.MoveDivider(x)
}

// columnContentX converts a screen column into a position within the
// scrolling header content.
func (g *Grid) columnContentX(x int) int {
	return x - g.header.Position() - dividerWidth + g.columns.Offset(layout.Horizontal)
}

// ColumnOrder returns the column titles in display order.
func (g *Grid) ColumnOrder() []string {
	out := make([]string, 0, len(g.sheet.Columns))
	out = append(out, g.sheet.Columns[:g.frozen]...)
	for _, idx := range g.order.Items() {
		out = append(out, g.sheet.Columns[idx])
	}
	return out
}
