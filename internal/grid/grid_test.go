package grid

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/atomicstack/panesync/internal/layout"
	"github.com/atomicstack/panesync/internal/theme"
)

func newTestGrid(t *testing.T, rows, cols int, mutate func(*Config)) *Grid {
	t.Helper()
	cfg := Config{
		Width:         20,
		Height:        5,
		FrozenColumns: 1,
		ColumnWidth:   6,
		Styles:        theme.Plain(),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	g, err := New(DemoSheet(rows, cols), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	sheet := DemoSheet(3, 3)
	cases := []Config{
		{FrozenColumns: 4},
		{FrozenColumns: -1},
		{ColumnWidth: 1},
		{Width: 20, MinPane: 10},
	}
	for _, cfg := range cases {
		if _, err := New(sheet, cfg); !errors.Is(err, layout.ErrInvalidConfiguration) {
			t.Fatalf("expected invalid configuration for %+v, got %v", cfg, err)
		}
	}
	if _, err := New(Sheet{}, Config{}); !errors.Is(err, layout.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for empty sheet, got %v", err)
	}
}

func TestNewRejectsRaggedRows(t *testing.T) {
	sheet := Sheet{
		Columns: []string{"a", "b", "c"},
		Rows:    [][]string{{"1", "2", "3"}, {"1"}},
	}
	if _, err := New(sheet, Config{FrozenColumns: 2}); !errors.Is(err, layout.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for a short row, got %v", err)
	}
	sheet.Rows[1] = []string{"1", "2", "3", "4"}
	if _, err := New(sheet, Config{}); !errors.Is(err, layout.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for a long row, got %v", err)
	}
}

func TestDefaultDividerSitsAfterFrozenColumns(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	if g.HeaderSplit().Position() != 6 || g.BodySplit().Position() != 6 {
		t.Fatalf("expected both dividers at 6, got %d/%d", g.HeaderSplit().Position(), g.BodySplit().Position())
	}
	if got := g.Region(PaneBody).Viewport(); got != (layout.Size{Width: 13, Height: 3}) {
		t.Fatalf("unexpected body viewport %+v", got)
	}
}

func TestDividerPercentIsApplied(t *testing.T) {
	g := newTestGrid(t, 5, 6, func(c *Config) {
		c.Width = 601
		c.DividerPercent = 20
	})
	if got := g.BodySplit().Position(); got != 120 {
		t.Fatalf("expected 120, got %d", got)
	}
}

func TestBodyScrollMovesColumnHeaders(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	if got := g.Scroll(PaneBody, layout.Horizontal, 7); got != 7 {
		t.Fatalf("expected body at 7, got %d", got)
	}
	if got := g.Region(PaneColumns).Offset(layout.Horizontal); got != 7 {
		t.Fatalf("expected headers at 7, got %d", got)
	}
	if got := g.Region(PaneRows).Offset(layout.Horizontal); got != 0 {
		t.Fatalf("expected frozen rows untouched, got %d", got)
	}
	first := strings.Split(g.View(), "\n")[0]
	if !strings.Contains(first, "C     D") {
		t.Fatalf("expected scrolled header, got %q", first)
	}
}

func TestRowScrollMovesBody(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	g.Scroll(PaneRows, layout.Vertical, 10)
	if got := g.Region(PaneBody).Offset(layout.Vertical); got != 2 {
		t.Fatalf("expected body clamped to 2, got %d", got)
	}
	if got := g.Region(PaneRows).Offset(layout.Vertical); got != 2 {
		t.Fatalf("expected rows at 2, got %d", got)
	}
	lines := strings.Split(g.View(), "\n")
	if !strings.HasPrefix(lines[2], "Row 3") {
		t.Fatalf("expected first body line to show row 3, got %q", lines[2])
	}
}

func TestHeaderVerticalWheelScrollsSheet(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	g.Scroll(PaneColumns, layout.Vertical, 1)
	if got := g.Region(PaneRows).Offset(layout.Vertical); got != 1 {
		t.Fatalf("expected rows to follow to 1, got %d", got)
	}
}

func TestFrozenPanesScrollTogether(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	g.MoveDivider(3)
	g.Scroll(PaneRows, layout.Horizontal, 2)
	if got := g.Region(PaneCorner).Offset(layout.Horizontal); got != 2 {
		t.Fatalf("expected corner at 2, got %d", got)
	}
	if got := g.Region(PaneBody).Offset(layout.Horizontal); got != 0 {
		t.Fatalf("expected body untouched, got %d", got)
	}
}

func TestVerticalOnlySyncLeavesHeadersBehind(t *testing.T) {
	g := newTestGrid(t, 5, 6, func(c *Config) { c.Sync = layout.AxisY })
	g.Scroll(PaneBody, layout.Horizontal, 5)
	if got := g.Region(PaneColumns).Offset(layout.Horizontal); got != 0 {
		t.Fatalf("expected headers to stay at 0, got %d", got)
	}
	g.Scroll(PaneBody, layout.Vertical, 1)
	if got := g.Region(PaneRows).Offset(layout.Vertical); got != 1 {
		t.Fatalf("expected rows to follow vertically, got %d", got)
	}
}

func TestMoveDividerUpdatesBothRowsAndViewports(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	g.MoveDivider(10)
	if g.BodySplit().Position() != 10 {
		t.Fatalf("expected body divider at 10, got %d", g.BodySplit().Position())
	}
	if got := g.Region(PaneBody).Viewport().Width; got != 9 {
		t.Fatalf("expected body viewport width 9, got %d", got)
	}
	if got := g.Region(PaneCorner).Viewport().Width; got != 10 {
		t.Fatalf("expected corner viewport width 10, got %d", got)
	}
	for i, line := range strings.Split(g.View(), "\n") {
		if idx := strings.Index(line, dividerGlyph); i != 1 && idx < 0 {
			t.Fatalf("expected divider on line %d: %q", i, line)
		}
	}
}

func TestDividerDragFromBodyRowMovesHeader(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	if g.PaneAt(6, 3) != PaneDivider {
		t.Fatalf("expected divider at x=6, got %s", g.PaneAt(6, 3))
	}
	if !g.BeginDrag(6, 3) {
		t.Fatalf("expected divider drag to start")
	}
	g.DragTo(12, 4)
	if !g.EndDrag() {
		t.Fatalf("expected drag to end")
	}
	if g.HeaderSplit().Position() != 12 {
		t.Fatalf("expected header divider mirrored to 12, got %d", g.HeaderSplit().Position())
	}
	if g.Dragging() {
		t.Fatalf("expected no drag after release")
	}
}

func TestColumnDragReordersColumns(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	if !g.BeginDrag(7, 0) {
		t.Fatalf("expected column drag to start")
	}
	g.DragTo(19, 0)
	g.EndDrag()
	want := []string{"Row", "B", "C", "A", "D", "E"}
	if got := g.ColumnOrder(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	lines := strings.Split(g.View(), "\n")
	if !strings.HasPrefix(lines[2], "Row 1 │2     3     1") {
		t.Fatalf("expected body cells reordered, got %q", lines[2])
	}
}

func TestCancelDragKeepsAppliedMoves(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	g.BeginDrag(7, 0)
	g.DragTo(13, 0)
	if !g.CancelDrag("focus lost") {
		t.Fatalf("expected cancel to report an active drag")
	}
	if g.Dragging() {
		t.Fatalf("expected idle after cancel")
	}
	if got := g.ColumnOrder()[1]; got != "B" {
		t.Fatalf("expected B first after partial drag, got %v", g.ColumnOrder())
	}
	if g.CancelDrag("again") {
		t.Fatalf("expected second cancel to be a no-op")
	}
}

func TestResizeKeepsDividerAndGrowsViewports(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	g.Resize(40, 10)
	if g.HeaderSplit().Position() != 6 || g.BodySplit().Position() != 6 {
		t.Fatalf("expected dividers to stay at 6")
	}
	if got := g.Region(PaneBody).Viewport(); got != (layout.Size{Width: 33, Height: 8}) {
		t.Fatalf("unexpected body viewport %+v", got)
	}
	if got := len(strings.Split(g.View(), "\n")); got != 10 {
		t.Fatalf("expected 10 lines, got %d", got)
	}
}

func TestPaneAt(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	cases := []struct {
		x, y int
		want Pane
	}{
		{0, 0, PaneCorner},
		{6, 0, PaneDivider},
		{7, 0, PaneColumns},
		{2, 1, PaneRule},
		{6, 1, PaneDivider},
		{0, 2, PaneRows},
		{19, 4, PaneBody},
		{20, 0, PaneNone},
		{0, -1, PaneNone},
	}
	for _, tc := range cases {
		if got := g.PaneAt(tc.x, tc.y); got != tc.want {
			t.Fatalf("PaneAt(%d,%d): expected %s, got %s", tc.x, tc.y, tc.want, got)
		}
	}
}

func TestViewLayout(t *testing.T) {
	g := newTestGrid(t, 5, 6, nil)
	lines := strings.Split(g.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[0] != "Row   │A     B     C" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != strings.Repeat("─", 6)+"┼"+strings.Repeat("─", 13) {
		t.Fatalf("unexpected rule %q", lines[1])
	}
	if lines[2] != "Row 1 │1     2     3" {
		t.Fatalf("unexpected body line %q", lines[2])
	}
}

func TestFindColumnScrollsToMatch(t *testing.T) {
	g := newTestGrid(t, 5, 10, nil)
	title, ok := g.FindColumn("d")
	if !ok || title != "D" {
		t.Fatalf("expected match D, got %q %v", title, ok)
	}
	if got := g.Region(PaneBody).Offset(layout.Horizontal); got != 18 {
		t.Fatalf("expected body at 18, got %d", got)
	}
	if got := g.Region(PaneColumns).Offset(layout.Horizontal); got != 18 {
		t.Fatalf("expected headers at 18, got %d", got)
	}
	if _, ok := g.FindColumn("zzz"); ok {
		t.Fatalf("expected no match")
	}
	if title, ok := g.FindColumn("row"); !ok || title != "Row" {
		t.Fatalf("expected frozen match Row, got %q %v", title, ok)
	}
}
