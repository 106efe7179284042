package layout

import (
	"errors"
	"testing"
)

func TestNewSplitPairRejectsInvalidMembers(t *testing.T) {
	s := mustSplit(t, SplitConfig{Total: 10})
	if _, err := NewSplitPair(nil, s); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for nil primary, got %v", err)
	}
	if _, err := NewSplitPair(s, s); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for identical members, got %v", err)
	}
}

func TestSplitPairAlignsFollowerOnConstruction(t *testing.T) {
	header := mustSplit(t, SplitConfig{Total: 100, Position: 30})
	body := mustSplit(t, SplitConfig{Total: 100, Position: 70})
	if _, err := NewSplitPair(header, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Position() != 30 {
		t.Fatalf("expected follower at 30, got %d", body.Position())
	}
}

func TestSplitPairMirrorsBothDirectionsAndTerminates(t *testing.T) {
	header := mustSplit(t, SplitConfig{Total: 100, Position: 30})
	body := mustSplit(t, SplitConfig{Total: 100, Position: 30})
	pair, err := NewSplitPair(header, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := 0
	count := func(DividerEvent) {
		calls++
		if calls > 10 {
			t.Fatalf("divider propagation did not terminate")
		}
	}
	header.OnDividerMoved(count)
	body.OnDividerMoved(count)

	header.MoveDivider(55)
	if body.Position() != 55 {
		t.Fatalf("expected follower at 55, got %d", body.Position())
	}
	if calls != 2 {
		t.Fatalf("expected one event per split, got %d", calls)
	}

	body.MoveDivider(20)
	if header.Position() != 20 {
		t.Fatalf("expected primary to follow body drag to 20, got %d", header.Position())
	}

	pair.OnDividerMoved(header, 44)
	if body.Position() != 44 {
		t.Fatalf("expected explicit propagation to 44, got %d", body.Position())
	}
}

func TestSplitPairFollowerClampIsAuthoritative(t *testing.T) {
	wide := mustSplit(t, SplitConfig{Total: 200, Position: 20})
	narrow := mustSplit(t, SplitConfig{Total: 100, MinSegment: 10, Position: 20})
	if _, err := NewSplitPair(wide, narrow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wide.MoveDivider(150)
	if wide.Position() != 150 {
		t.Fatalf("expected primary at 150, got %d", wide.Position())
	}
	if narrow.Position() != 90 {
		t.Fatalf("expected follower clamped to 90, got %d", narrow.Position())
	}
}

func TestSplitPairFollowerDragSnapsToClampedPrimary(t *testing.T) {
	narrow := mustSplit(t, SplitConfig{Total: 100, MinSegment: 10, Position: 20})
	wide := mustSplit(t, SplitConfig{Total: 200, Position: 20})
	if _, err := NewSplitPair(narrow, wide); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := 0
	count := func(DividerEvent) {
		calls++
		if calls > 10 {
			t.Fatalf("divider propagation did not terminate")
		}
	}
	narrow.OnDividerMoved(count)
	wide.OnDividerMoved(count)

	wide.MoveDivider(150)
	if narrow.Position() != 90 {
		t.Fatalf("expected primary clamped to 90, got %d", narrow.Position())
	}
	if wide.Position() != narrow.Position() {
		t.Fatalf("expected follower pulled back to %d, got %d", narrow.Position(), wide.Position())
	}

	wide.MoveDivider(40)
	if narrow.Position() != 40 || wide.Position() != 40 {
		t.Fatalf("expected both at 40, got %d/%d", narrow.Position(), wide.Position())
	}
}

func TestSplitPairCloseStopsMirroring(t *testing.T) {
	a := mustSplit(t, SplitConfig{Total: 100, Position: 10})
	b := mustSplit(t, SplitConfig{Total: 100, Position: 10})
	pair, _ := NewSplitPair(a, b)
	pair.Close()
	a.MoveDivider(60)
	if b.Position() != 10 {
		t.Fatalf("expected closed pair not to mirror, got %d", b.Position())
	}
}
