package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned
// commands, including batched ones, until the model goes quiet.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, cmd := range batch {
			h.run(cmd)
		}
		return
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.run(cmd)
}

func (h *Harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	h.Send(cmd())
}

// Click presses and releases the left button at (x, y).
func (h *Harness) Click(x, y int) {
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

// Drag presses at from, moves through each point of path and releases at the
// last one.
func (h *Harness) Drag(fromX, fromY int, path ...[2]int) {
	h.Send(tea.MouseMsg{X: fromX, Y: fromY, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	x, y := fromX, fromY
	for _, p := range path {
		x, y = p[0], p[1]
		h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	}
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

// Wheel sends a single wheel event at (x, y).
func (h *Harness) Wheel(x, y int, button tea.MouseButton, shift bool) {
	h.Send(tea.MouseMsg{X: x, Y: y, Button: button, Shift: shift, Action: tea.MouseActionPress})
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
