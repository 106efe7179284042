// Package reorder maps pointer drags along one axis onto moves within an
// ordered sequence.
package reorder

import (
	"fmt"

	"github.com/atomicstack/panesync/internal/layout"
)

// ErrInvalidConfiguration is shared with the layout package so callers can
// test construction failures with a single errors.Is.
var ErrInvalidConfiguration = layout.ErrInvalidConfiguration

// State is the drag state machine position.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Config sets the geometry of the items along the drag axis. Each item
// occupies ItemExtent cells followed by Gap empty cells.
type Config struct {
	ItemExtent int
	Gap        int
}

// Controller owns the item order and the drag state.
type Controller[T any] struct {
	items  []T
	extent int
	gap    int

	state    State
	current  int
	original int

	onReorder  func(from, to int)
	onComplete func(order []T)
}

// New copies items and validates the geometry.
func New[T any](items []T, cfg Config) (*Controller[T], error) {
	if cfg.ItemExtent <= 0 {
		return nil, fmt.Errorf("%w: item extent must be positive (got %d)", ErrInvalidConfiguration, cfg.ItemExtent)
	}
	if cfg.Gap < 0 {
		return nil, fmt.Errorf("%w: item gap must be >= 0 (got %d)", ErrInvalidConfiguration, cfg.Gap)
	}
	return &Controller[T]{
		items:  append([]T(nil), items...),
		extent: cfg.ItemExtent,
		gap:    cfg.Gap,
	}, nil
}

// OnReorder registers the observer called after each single move.
func (c *Controller[T]) OnReorder(fn func(from, to int)) { c.onReorder = fn }

// OnComplete registers the observer called with the final order when a drag
// is released.
func (c *Controller[T]) OnComplete(fn func(order []T)) { c.onComplete = fn }

// Items returns a copy of the current order.
func (c *Controller[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// Len returns the number of items.
func (c *Controller[T]) Len() int { return len(c.items) }

// SetItems replaces the sequence and abandons any drag in progress.
func (c *Controller[T]) SetItems(items []T) {
	c.items = append([]T(nil), items...)
	c.reset()
}

// State reports the current state.
func (c *Controller[T]) State() State { return c.state }

// Dragging returns the drag subject's current and original index.
func (c *Controller[T]) Dragging() (current, original int, ok bool) {
	if c.state != Dragging {
		return 0, 0, false
	}
	return c.current, c.original, true
}

func (c *Controller[T]) stride() int { return c.extent + c.gap }

// IndexAt returns the item under pos, or false when pos falls in a gap or
// outside the items.
func (c *Controller[T]) IndexAt(pos int) (int, bool) {
	if pos < 0 {
		return 0, false
	}
	idx := pos / c.stride()
	if idx >= len(c.items) {
		return 0, false
	}
	if pos%c.stride() >= c.extent {
		return 0, false
	}
	return idx, true
}

// slotAt maps any position to the nearest valid index.
func (c *Controller[T]) slotAt(pos int) int {
	s := c.stride()
	idx := pos / s
	if pos < 0 && pos%s != 0 {
		idx--
	}
	if idx < 0 {
		return 0
	}
	if idx > len(c.items)-1 {
		return len(c.items) - 1
	}
	return idx
}

// PointerDown starts a drag when pos lands on an item. It reports whether a
// drag started.
func (c *Controller[T]) PointerDown(pos int) bool {
	if c.state == Dragging {
		return false
	}
	idx, ok := c.IndexAt(pos)
	if !ok {
		return false
	}
	c.state = Dragging
	c.current = idx
	c.original = idx
	return true
}

// PointerMove moves the drag subject to the slot under pos. It reports
// whether the order changed.
func (c *Controller[T]) PointerMove(pos int) bool {
	if c.state != Dragging || len(c.items) == 0 {
		return false
	}
	target := c.slotAt(pos)
	if target == c.current {
		return false
	}
	from := c.current
	c.move(from, target)
	c.current = target
	if c.onReorder != nil {
		c.onReorder(from, target)
	}
	return true
}

// PointerUp ends the drag and publishes the final order.
func (c *Controller[T]) PointerUp() bool {
	if c.state != Dragging {
		return false
	}
	c.reset()
	if c.onComplete != nil {
		c.onComplete(c.Items())
	}
	return true
}

// Cancel ends the drag without further events. Moves already applied stay.
func (c *Controller[T]) Cancel() bool {
	if c.state != Dragging {
		return false
	}
	c.reset()
	return true
}

// MoveItem performs a single move outside of a pointer drag, for keyboard
// reordering. Out of range indexes are clamped.
func (c *Controller[T]) MoveItem(from, to int) bool {
	n := len(c.items)
	if n == 0 || c.state == Dragging {
		return false
	}
	if from < 0 || from >= n {
		return false
	}
	if to < 0 {
		to = 0
	}
	if to >= n {
		to = n - 1
	}
	if from == to {
		return false
	}
	c.move(from, to)
	if c.onReorder != nil {
		c.onReorder(from, to)
	}
	if c.onComplete != nil {
		c.onComplete(c.Items())
	}
	return true
}

func (c *Controller[T]) move(from, to int) {
	item := c.items[from]
	if from < to {
		copy(c.items[from:to], c.items[from+1:to+1])
	} else {
		copy(c.items[to+1:from+1], c.items[to:from])
	}
	c.items[to] = item
}

func (c *Controller[T]) reset() {
	c.state = Idle
	c.current = 0
	c.original = 0
}
