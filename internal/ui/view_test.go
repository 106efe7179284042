package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/panesync/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
)

func TestGridViewLayout(t *testing.T) {
	h := NewHarness(newTestModel(t, nil))
	lines := strings.Split(h.View(), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != " grid  tasks " {
		t.Fatalf("unexpected tabs line %q", lines[0])
	}
	if lines[1] != "Row   │A     B     C" {
		t.Fatalf("unexpected header line %q", lines[1])
	}
	if lines[3] != "Row 1 │1     2     3" {
		t.Fatalf("unexpected first body line %q", lines[3])
	}
}

func TestTaskViewLayout(t *testing.T) {
	m := newTestModel(t, func(o *Options) {
		o.View = ViewTasks
		o.Width = 30
	})
	lines := strings.Split(NewHarness(m).View(), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d: %q", len(lines), lines)
	}
	if got := strings.TrimRight(lines[1], " "); got != " 1.  Write spec" {
		t.Fatalf("unexpected first task line %q", got)
	}
	if got := strings.TrimRight(lines[5], " "); got != " 5.  Update docs" {
		t.Fatalf("unexpected last task line %q", got)
	}
}

func TestFooterShowsStatus(t *testing.T) {
	h := NewHarness(newTestModel(t, nil))
	h.Send(runes("/"))
	h.Send(runes("zz"))
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	lines := strings.Split(h.View(), "\n")
	footer := lines[len(lines)-1]
	if !strings.HasPrefix(footer, "Error: no column") {
		t.Fatalf("unexpected footer %q", footer)
	}
}

func TestFitWidth(t *testing.T) {
	if got := fitWidth("abcdef", 4); got != "abc…" {
		t.Fatalf("expected abc…, got %q", got)
	}
	if got := fitWidth("abc", 4); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
}

func TestGridViewGolden(t *testing.T) {
	testutil.AssertGolden(t, "grid_view.golden", NewHarness(newTestModel(t, nil)).View())
}
