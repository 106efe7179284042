package layout

import (
	"fmt"
	"math"
)

// SplitConfig describes a split at construction time. Percent, when set,
// wins over Position and is only ever applied here.
type SplitConfig struct {
	Total      int
	MinSegment int
	Position   int
	Percent    float64
}

// DividerEvent describes an applied divider change.
type DividerEvent struct {
	Split    *Split
	Position int
	Previous int
}

type dividerObserver struct {
	id int
	fn func(DividerEvent)
}

// Split is a two-segment layout along one axis with a single divider.
type Split struct {
	total      int
	position   int
	minSegment int

	observers []dividerObserver
	nextObs   int
}

// NewSplit validates cfg and places the divider.
func NewSplit(cfg SplitConfig) (*Split, error) {
	if cfg.Total < 0 {
		return nil, fmt.Errorf("%w: split total %d is negative", ErrInvalidConfiguration, cfg.Total)
	}
	if cfg.MinSegment < 0 {
		return nil, fmt.Errorf("%w: minimum segment %d is negative", ErrInvalidConfiguration, cfg.MinSegment)
	}
	if cfg.MinSegment*2 > cfg.Total {
		return nil, fmt.Errorf("%w: minimum segment %d does not fit twice in %d", ErrInvalidConfiguration, cfg.MinSegment, cfg.Total)
	}
	if cfg.Percent < 0 || cfg.Percent > 100 || math.IsNaN(cfg.Percent) {
		return nil, fmt.Errorf("%w: divider percent %.2f outside [0,100]", ErrInvalidConfiguration, cfg.Percent)
	}
	s := &Split{total: cfg.Total, minSegment: cfg.MinSegment}
	pos := cfg.Position
	if cfg.Percent > 0 {
		pos = int(math.Round(float64(cfg.Total) * cfg.Percent / 100))
	}
	lo, hi := s.bounds()
	s.position = clamp(pos, lo, hi)
	return s, nil
}

// Total returns the extent along the split axis.
func (s *Split) Total() int { return s.total }

// Position returns the divider position.
func (s *Split) Position() int { return s.position }

// MinSegment returns the configured minimum segment extent.
func (s *Split) MinSegment() int { return s.minSegment }

// Segments returns the extents of the segments either side of the divider.
func (s *Split) Segments() (first, second int) {
	return s.position, s.total - s.position
}

// bounds returns the valid divider range. A runtime resize below twice the
// minimum segment shrinks the effective minimum instead of failing.
func (s *Split) bounds() (lo, hi int) {
	lo = s.minSegment
	if lo*2 > s.total {
		lo = s.total / 2
	}
	return lo, s.total - lo
}

// MoveDivider clamps x into the valid range, applies it and returns the
// applied position.
func (s *Split) MoveDivider(x int) int {
	lo, hi := s.bounds()
	return s.set(clamp(x, lo, hi))
}

// Resize changes the total extent. The divider keeps its absolute position
// unless that position no longer fits.
func (s *Split) Resize(total int) int {
	if total < 0 {
		total = 0
	}
	s.total = total
	lo, hi := s.bounds()
	return s.set(clamp(s.position, lo, hi))
}

func (s *Split) set(pos int) int {
	prev := s.position
	if pos == prev {
		return pos
	}
	s.position = pos
	ev := DividerEvent{Split: s, Position: pos, Previous: prev}
	snapshot := append([]dividerObserver(nil), s.observers...)
	for _, obs := range snapshot {
		obs.fn(ev)
	}
	return s.position
}

// OnDividerMoved registers fn and returns a function that removes it.
func (s *Split) OnDividerMoved(fn func(DividerEvent)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.nextObs++
	id := s.nextObs
	s.observers = append(s.observers, dividerObserver{id: id, fn: fn})
	return func() {
		for i, obs := range s.observers {
			if obs.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}
