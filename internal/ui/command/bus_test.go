package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ value string }

func TestExecuteRunsHandler(t *testing.T) {
	cmd := New().Execute(Request{ID: "tasks:order", Label: "report", Handler: func() tea.Msg {
		return doneMsg{value: "ok"}
	}})
	msg, ok := cmd().(doneMsg)
	if !ok || msg.value != "ok" {
		t.Fatalf("expected handler result, got %#v", msg)
	}
}

func TestExecuteWithoutHandlerYieldsNil(t *testing.T) {
	cmd := New().Execute(Request{ID: "noop"})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
