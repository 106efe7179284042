package events

import "github.com/atomicstack/panesync/internal/logging"

type ScrollTracer struct{}

type SplitTracer struct{}

type DragTracer struct{}

var (
	Scroll = ScrollTracer{}
	Split  = SplitTracer{}
	Drag   = DragTracer{}
)

func (ScrollTracer) Offset(region, axis string, offset, previous int) {
	logging.Trace("scroll.offset", map[string]interface{}{
		"region":   region,
		"axis":     axis,
		"offset":   offset,
		"previous": previous,
	})
}

func (ScrollTracer) Input(region, axis string, delta, applied int) {
	logging.Trace("scroll.input", map[string]interface{}{
		"region":  region,
		"axis":    axis,
		"delta":   delta,
		"applied": applied,
	})
}

func (SplitTracer) Divider(split string, position, previous int) {
	logging.Trace("split.divider", map[string]interface{}{
		"split":    split,
		"position": position,
		"previous": previous,
	})
}

func (SplitTracer) Resize(split string, total, position int) {
	logging.Trace("split.resize", map[string]interface{}{"split": split, "total": total, "position": position})
}

func (DragTracer) Start(target string, index int) {
	logging.Trace("drag.start", map[string]interface{}{"target": target, "index": index})
}

func (DragTracer) Reorder(target string, from, to int) {
	logging.Trace("drag.reorder", map[string]interface{}{"target": target, "from": from, "to": to})
}

func (DragTracer) Complete(target string, order []string) {
	logging.Trace("drag.complete", map[string]interface{}{"target": target, "order": order})
}

func (DragTracer) Cancel(target, reason string) {
	logging.Trace("drag.cancel", map[string]interface{}{"target": target, "reason": reason})
}
