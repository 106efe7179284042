package state

import "github.com/atomicstack/panesync/internal/layout"

// List tracks the cursor of a vertical list and the scroll region that
// decides which rows are visible.
type List struct {
	ID     string
	Cursor int
	region *layout.Region
	count  int
}

// NewList builds a list of count rows with the given visible height.
func NewList(id string, count, visible int) *List {
	l := &List{
		ID:     id,
		region: layout.NewRegion(id, layout.Size{Height: max(count, 0)}, layout.Size{Height: max(visible, 0)}),
		count:  max(count, 0),
	}
	return l
}

// Region exposes the scroll region backing the list.
func (l *List) Region() *layout.Region { return l.region }

// Len returns the row count.
func (l *List) Len() int { return l.count }

// Offset returns the first visible row.
func (l *List) Offset() int { return l.region.Offset(layout.Vertical) }

// Visible returns the number of rows the viewport shows.
func (l *List) Visible() int { return l.region.Viewport().Height }

// SetCount updates the row count, keeping the cursor in range.
func (l *List) SetCount(count int) {
	l.count = max(count, 0)
	l.region.SetContentExtent(layout.Size{Height: l.count})
	l.EnsureCursorVisible()
}

// SetVisible updates the viewport height.
func (l *List) SetVisible(visible int) {
	l.region.SetViewportExtent(layout.Size{Height: max(visible, 0)})
	l.EnsureCursorVisible()
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	return l.MoveCursorTo(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	return l.MoveCursorTo(l.count - 1)
}

// MoveCursorPageUp moves the cursor up by one viewport.
func (l *List) MoveCursorPageUp() bool {
	return l.MoveCursorBy(-l.pageSize())
}

// MoveCursorPageDown moves the cursor down by one viewport.
func (l *List) MoveCursorPageDown() bool {
	return l.MoveCursorBy(l.pageSize())
}

// MoveCursorBy shifts the cursor, clamped to the items.
func (l *List) MoveCursorBy(delta int) bool {
	return l.MoveCursorTo(l.Cursor + delta)
}

// MoveCursorTo places the cursor, clamped to the items, and scrolls it
// into view. An empty list resets the cursor and reports no movement.
func (l *List) MoveCursorTo(idx int) bool {
	if l.count == 0 {
		l.Cursor = 0
		l.region.SetOffset(layout.Vertical, 0)
		return false
	}
	old := l.Cursor
	switch {
	case idx < 0:
		l.Cursor = 0
	case idx >= l.count:
		l.Cursor = l.count - 1
	default:
		l.Cursor = idx
	}
	l.EnsureCursorVisible()
	return l.Cursor != old
}

func (l *List) pageSize() int {
	size := l.Visible()
	if size <= 0 || size > l.count {
		size = l.count
	}
	return max(size, 1)
}

// EnsureCursorVisible adjusts the scroll offset so the cursor row is shown.
func (l *List) EnsureCursorVisible() {
	if l.count == 0 {
		l.Cursor = 0
		l.region.SetOffset(layout.Vertical, 0)
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= l.count {
		l.Cursor = l.count - 1
	}
	visible := l.Visible()
	if visible <= 0 {
		l.region.SetOffset(layout.Vertical, 0)
		return
	}
	offset := l.Offset()
	if l.Cursor < offset {
		l.region.SetOffset(layout.Vertical, l.Cursor)
		return
	}
	if l.Cursor > offset+visible-1 {
		l.region.SetOffset(layout.Vertical, l.Cursor-visible+1)
	}
}

// RowAt maps a row inside the viewport to an item index.
func (l *List) RowAt(y int) (int, bool) {
	if y < 0 || y >= l.Visible() {
		return 0, false
	}
	idx := l.Offset() + y
	if idx >= l.count {
		return 0, false
	}
	return idx, true
}
