package layout

import "github.com/google/uuid"

// OffsetEvent describes an applied offset change on one axis.
type OffsetEvent struct {
	Region   *Region
	Axis     Axis
	Offset   int
	Previous int
}

type offsetObserver struct {
	id int
	fn func(OffsetEvent)
}

// Region is a single scrollable viewport over a larger content area.
type Region struct {
	id       string
	content  Size
	viewport Size
	offset   [2]int
	detached bool

	observers []offsetObserver
	nextObs   int
}

// NewRegion builds a region at offset zero. An empty id is replaced with a
// generated one.
func NewRegion(id string, content, viewport Size) *Region {
	if id == "" {
		id = uuid.NewString()
	}
	return &Region{
		id:       id,
		content:  nonNegative(content),
		viewport: nonNegative(viewport),
	}
}

func nonNegative(s Size) Size {
	if s.Width < 0 {
		s.Width = 0
	}
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}

// ID returns the region identity.
func (r *Region) ID() string { return r.id }

// Content returns the scrollable content extent.
func (r *Region) Content() Size { return r.content }

// Viewport returns the visible extent.
func (r *Region) Viewport() Size { return r.viewport }

// Offset returns the current offset on the axis.
func (r *Region) Offset(a Axis) int {
	if a == Vertical {
		return r.offset[1]
	}
	return r.offset[0]
}

// MaxOffset is the largest offset the axis accepts; zero when the content
// fits inside the viewport.
func (r *Region) MaxOffset(a Axis) int {
	limit := r.content.Along(a) - r.viewport.Along(a)
	if limit < 0 {
		return 0
	}
	return limit
}

// SetContentExtent replaces the content bounds and re-clamps both offsets.
func (r *Region) SetContentExtent(content Size) {
	r.content = nonNegative(content)
	r.reclamp()
}

// SetViewportExtent replaces the viewport bounds and re-clamps both offsets.
func (r *Region) SetViewportExtent(viewport Size) {
	r.viewport = nonNegative(viewport)
	r.reclamp()
}

func (r *Region) reclamp() {
	r.SetOffset(Horizontal, r.offset[0])
	r.SetOffset(Vertical, r.offset[1])
}

// SetOffset moves the axis to value, clamped to [0, MaxOffset], and returns
// the value actually applied. Observers only hear about real changes.
func (r *Region) SetOffset(a Axis, value int) int {
	idx := 0
	if a == Vertical {
		idx = 1
	}
	next := clamp(value, 0, r.MaxOffset(a))
	prev := r.offset[idx]
	if next == prev {
		return next
	}
	r.offset[idx] = next
	r.notify(OffsetEvent{Region: r, Axis: a, Offset: next, Previous: prev})
	return next
}

// ScrollBy is SetOffset relative to the current offset.
func (r *Region) ScrollBy(a Axis, delta int) int {
	return r.SetOffset(a, r.Offset(a)+delta)
}

// OnOffsetChanged registers fn and returns a function that removes it.
func (r *Region) OnOffsetChanged(fn func(OffsetEvent)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	r.nextObs++
	id := r.nextObs
	r.observers = append(r.observers, offsetObserver{id: id, fn: fn})
	return func() {
		for i, obs := range r.observers {
			if obs.id == id {
				r.observers = append(r.observers[:i], r.observers[i+1:]...)
				return
			}
		}
	}
}

func (r *Region) notify(ev OffsetEvent) {
	// observers may unsubscribe while being called
	snapshot := append([]offsetObserver(nil), r.observers...)
	for _, obs := range snapshot {
		obs.fn(ev)
	}
}

// Detach marks the region as destroyed. Groups still holding it skip it and
// its observers are dropped.
func (r *Region) Detach() {
	r.detached = true
	r.observers = nil
}

// Detached reports whether Detach was called.
func (r *Region) Detached() bool { return r.detached }
