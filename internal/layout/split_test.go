package layout

import (
	"errors"
	"testing"
)

func mustSplit(t *testing.T, cfg SplitConfig) *Split {
	t.Helper()
	s, err := NewSplit(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestNewSplitRejectsInvalidConfiguration(t *testing.T) {
	cases := []SplitConfig{
		{Total: 10, MinSegment: 6},
		{Total: -1},
		{Total: 10, MinSegment: -1},
		{Total: 10, Percent: 120},
		{Total: 10, Percent: -3},
	}
	for _, cfg := range cases {
		if _, err := NewSplit(cfg); !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected invalid configuration for %+v, got %v", cfg, err)
		}
	}
}

func TestNewSplitPlacesDivider(t *testing.T) {
	if got := mustSplit(t, SplitConfig{Total: 600, Percent: 20}).Position(); got != 120 {
		t.Fatalf("expected 120 from percent, got %d", got)
	}
	if got := mustSplit(t, SplitConfig{Total: 600, Position: 250}).Position(); got != 250 {
		t.Fatalf("expected absolute 250, got %d", got)
	}
	if got := mustSplit(t, SplitConfig{Total: 600, MinSegment: 50, Position: 10}).Position(); got != 50 {
		t.Fatalf("expected clamp to minimum 50, got %d", got)
	}
}

func TestMoveDividerAlwaysWithinBounds(t *testing.T) {
	s := mustSplit(t, SplitConfig{Total: 100, MinSegment: 15, Position: 50})
	for x := -50; x <= 200; x += 5 {
		got := s.MoveDivider(x)
		if got < 15 || got > 85 {
			t.Fatalf("MoveDivider(%d) = %d outside [15,85]", x, got)
		}
		if got != s.Position() {
			t.Fatalf("MoveDivider(%d) returned %d but position is %d", x, got, s.Position())
		}
	}
}

func TestResizeKeepsAbsolutePositions(t *testing.T) {
	splits := []*Split{
		mustSplit(t, SplitConfig{Total: 600, Percent: 20}),
		mustSplit(t, SplitConfig{Total: 600, Percent: 40}),
		mustSplit(t, SplitConfig{Total: 600, Percent: 60}),
	}
	want := []int{120, 240, 360}
	for i, s := range splits {
		if s.Position() != want[i] {
			t.Fatalf("split %d: expected initial %d, got %d", i, want[i], s.Position())
		}
		s.Resize(900)
		if s.Position() != want[i] {
			t.Fatalf("split %d: expected %d after resize, got %d", i, want[i], s.Position())
		}
		if s.Total() != 900 {
			t.Fatalf("split %d: expected total 900, got %d", i, s.Total())
		}
	}
}

func TestResizeShrinkClampsDivider(t *testing.T) {
	s := mustSplit(t, SplitConfig{Total: 100, MinSegment: 10, Position: 80})
	if got := s.Resize(60); got != 50 {
		t.Fatalf("expected divider clamped to 50, got %d", got)
	}
	if got := s.Resize(12); got != 6 {
		t.Fatalf("expected effective minimum to shrink to 6, got %d", got)
	}
	if got := s.Resize(-4); got != 0 {
		t.Fatalf("expected 0 for collapsed split, got %d", got)
	}
}

func TestSegmentsCoverTotal(t *testing.T) {
	s := mustSplit(t, SplitConfig{Total: 80, Position: 30})
	first, second := s.Segments()
	if first != 30 || second != 50 {
		t.Fatalf("expected segments 30/50, got %d/%d", first, second)
	}
}

func TestDividerObserversSeeChanges(t *testing.T) {
	s := mustSplit(t, SplitConfig{Total: 100, Position: 40})
	var got []DividerEvent
	cancel := s.OnDividerMoved(func(ev DividerEvent) { got = append(got, ev) })
	s.MoveDivider(40)
	s.MoveDivider(45)
	s.Resize(30)
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[1].Position != 30 || got[1].Previous != 45 {
		t.Fatalf("unexpected resize event %#v", got[1])
	}
	cancel()
	s.MoveDivider(0)
	if len(got) != 2 {
		t.Fatalf("expected no events after cancel")
	}
}
