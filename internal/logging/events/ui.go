package events

import "github.com/atomicstack/panesync/internal/logging"

type UITracer struct{}

type FinderTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Finder  = FinderTracer{}
	Command = CommandTracer{}
)

func (UITracer) View(name string) {
	logging.Trace("ui.view", map[string]interface{}{"view": name})
}

func (UITracer) Cursor(view string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"view": view, "cursor": cursor})
}

func (UITracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("ui.error", map[string]interface{}{"error": err.Error()})
}

func (FinderTracer) Open() {
	logging.Trace("finder.open", nil)
}

func (FinderTracer) Query(query, match string, found bool) {
	logging.Trace("finder.query", map[string]interface{}{"query": query, "match": match, "found": found})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
