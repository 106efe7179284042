package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"1", "Write spec"},
		{"10", "Ship"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft})
	want := []string{
		" 1  Write spec",
		"10  Ship",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}

func TestFixedPadsAndTruncates(t *testing.T) {
	got := Fixed([]string{"ab", "abcdefgh", "7"}, 5, []Alignment{AlignLeft, AlignLeft, AlignRight})
	want := "ab   abc…    7 "
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestCellHandlesWideRunes(t *testing.T) {
	got := Cell("日本語", 5, AlignLeft)
	if w := cellWidth(got); w != 5 {
		t.Fatalf("expected width 5, got %d (%q)", w, got)
	}
	if Cell("x", 0, AlignLeft) != "" {
		t.Fatalf("expected empty cell for zero width")
	}
	if got := Cell("xyz", 1, AlignLeft); got != " " {
		t.Fatalf("expected separator only, got %q", got)
	}
}
