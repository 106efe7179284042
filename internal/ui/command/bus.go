package command

import (
	"fmt"

	"github.com/atomicstack/panesync/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request describes work the host performs in reaction to a layout event,
// such as reporting the final order of a reorder drag.
type Request struct {
	ID      string
	Label   string
	Handler func() tea.Msg
}

// Bus turns requests into Bubble Tea commands so side effects run off the
// update loop.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps the request handler into a command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
